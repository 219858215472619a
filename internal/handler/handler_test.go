package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"todo/internal/domain"
	"todo/internal/handler"
	"todo/internal/job"
	"todo/internal/logging"
	"todo/internal/repository/memory"
	"todo/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time          { return c.t }
func (c *testClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type testAPI struct {
	router *gin.Engine
	clock  *testClock
}

func setupAPI(t *testing.T, limits domain.Limits) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.New()
	clock := &testClock{t: time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)}
	projects := service.NewProjectService(store.Projects(), limits, service.WithClock(clock.Now))
	tasks := service.NewTaskService(store.Projects(), store.Tasks(), limits, service.WithClock(clock.Now))
	sweeper := job.NewSweeper(store.Tasks(), logging.Discard(), job.WithClock(clock.Now))

	r := gin.New()
	registerRoutes(r.Group("/api/v1"),
		handler.NewProjectHandler(projects),
		handler.NewTaskHandler(tasks, clock.Now),
		handler.NewJobHandler(sweeper))
	return &testAPI{router: r, clock: clock}
}

func registerRoutes(api *gin.RouterGroup, projects *handler.ProjectHandler, tasks *handler.TaskHandler, jobs *handler.JobHandler) {
	api.GET("/projects", projects.GetAll)
	api.POST("/projects", projects.Create)
	api.GET("/projects/:name", projects.GetByName)
	api.PUT("/projects/:name", projects.Update)
	api.DELETE("/projects/:name", projects.Delete)

	api.GET("/projects/:name/tasks", tasks.GetAll)
	api.POST("/projects/:name/tasks", tasks.Create)
	api.GET("/projects/:name/tasks/:id", tasks.GetByID)
	api.PUT("/projects/:name/tasks/:id", tasks.Update)
	api.PATCH("/projects/:name/tasks/:id/status", tasks.UpdateStatus)
	api.DELETE("/projects/:name/tasks/:id", tasks.Delete)

	api.POST("/jobs/autoclose", jobs.Autoclose)
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	a.router.ServeHTTP(resp, req)
	return resp
}

func decode[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	return out
}
