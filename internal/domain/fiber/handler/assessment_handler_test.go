package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/hapchess/chess-mentor-hub/internal/domain/fiber/handler"
	"github.com/hapchess/chess-mentor-hub/internal/model"
	"github.com/hapchess/chess-mentor-hub/internal/service"
	"github.com/hapchess/chess-mentor-hub/internal/usecase"
)

type memAssessmentRepo struct {
	assessments []model.PlayerAssessment
}

func (m *memAssessmentRepo) Create(a *model.PlayerAssessment) error {
	m.assessments = append(m.assessments, *a)
	return nil
}

func (m *memAssessmentRepo) FindByID(id string) (*model.PlayerAssessment, error) {
	for i := range m.assessments {
		if m.assessments[i].ID.String() == id {
			return &m.assessments[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memAssessmentRepo) FindAll(limit, offset int) ([]model.PlayerAssessment, int64, error) {
	sorted := make([]model.PlayerAssessment, len(m.assessments))
	copy(sorted, m.assessments)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].SubmissionDate.After(sorted[j].SubmissionDate)
	})
	if offset > len(sorted) {
		offset = len(sorted)
	}
	end := offset + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[offset:end], int64(len(m.assessments)), nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	app := fiber.New()
	api := app.Group("/api")

	assessmentUC := usecase.NewAssessmentUsecase(&memAssessmentRepo{})
	handler.NewAssessmentHandler(assessmentUC).RegisterRoutes(api)

	hash, err := service.HashPassword("hapchess1")
	require.NoError(t, err)
	authUC := usecase.NewAuthUsecase(
		map[string]string{"gmvishnu": hash},
		service.NewBcryptPasswordVerifier(),
	)
	handler.NewAuthHandler(authUC).RegisterRoutes(api)

	handler.NewHealthHandler().RegisterRoutes(app, api)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func getJSON(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func submissionPayload(name string) map[string]any {
	return map[string]any{
		"player_name": name,
		"opening":     map[string]any{"preparation_depth": 20},
		"middlegame":  map[string]any{"calculation_ability": 9, "tactical_vision": 9},
		"endgame": map[string]any{
			"endgame_calculation": 2, "theoretical_knowledge": 2,
			"pawn_endgames": 2, "rook_endgames": 2, "bishop_endgames": 2,
			"knight_endgames": 2, "queen_endgames": 2,
		},
		"psychology":   map[string]any{"confidence_level": 5, "motivation_level": 5, "focus_duration": 30},
		"study_habits": map[string]any{"study_consistency": 5, "daily_study_time": 60},
		"general":      map[string]any{"physical_stamina": 5, "sleep_before_games": 4},
	}
}

func TestCreateAndSummarizeAssessment(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/assessments", submissionPayload("Magnus"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	data := created["data"].(map[string]any)
	id := data["id"].(string)
	require.NotEmpty(t, id)

	resp = getJSON(t, app, "/api/assessments/"+id+"/summary")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	summary := decodeBody(t, resp)["data"].(map[string]any)

	assert.Equal(t, "Magnus", summary["player_name"])
	scores := summary["section_scores"].(map[string]any)
	assert.InDelta(t, 10.0, scores["opening"], 1e-9)
	assert.InDelta(t, 9.0, scores["middlegame"], 1e-9)
	assert.InDelta(t, 2.0, scores["endgame"], 1e-9)

	strengths := summary["strengths"].([]any)
	assert.Contains(t, strengths, "Opening")
	assert.Contains(t, strengths, "Middlegame")
	critical := summary["critical_areas"].([]any)
	assert.Equal(t, []any{"Endgame"}, critical)
}

func TestCreateAssessmentRequiresPlayerName(t *testing.T) {
	app := newTestApp(t)

	payload := submissionPayload("")
	resp := postJSON(t, app, "/api/assessments", payload)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateAssessmentAppliesFieldDefaults(t *testing.T) {
	app := newTestApp(t)

	// psychology omits focus_duration; the default of 10 minutes applies
	resp := postJSON(t, app, "/api/assessments", map[string]any{
		"player_name": "Alireza",
		"psychology":  map[string]any{"confidence_level": 7},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]any)
	psych := data["psychology"].(map[string]any)
	assert.InDelta(t, 7, psych["confidence_level"], 1e-9)
	assert.InDelta(t, 10, psych["focus_duration"], 1e-9)
	assert.InDelta(t, 1, psych["motivation_level"], 1e-9)
}

func TestListAssessmentsNewestFirst(t *testing.T) {
	app := newTestApp(t)

	for _, name := range []string{"One", "Two", "Three"} {
		resp := postJSON(t, app, "/api/assessments", submissionPayload(name))
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp := getJSON(t, app, "/api/assessments?page=1&page_size=2")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	items := body["data"].([]any)
	assert.Len(t, items, 2)
	pagination := body["pagination"].(map[string]any)
	assert.InDelta(t, 3, pagination["total_items"], 1e-9)
	assert.Equal(t, true, pagination["has_more"])
}

func TestSummaryAll(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/assessments", submissionPayload("Ding"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = getJSON(t, app, "/api/assessments/summary/all")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	summaries := decodeBody(t, resp)["data"].([]any)
	require.Len(t, summaries, 1)

	row := summaries[0].(map[string]any)
	assert.Equal(t, "Ding", row["player_name"])
	assert.NotEmpty(t, row["assessment_id"])
	assert.NotEmpty(t, row["submission_date"])
}

func TestGetAssessmentNotFound(t *testing.T) {
	app := newTestApp(t)

	resp := getJSON(t, app, "/api/assessments/4f4f8a48-0000-0000-0000-000000000000")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCoachLogin(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/coaches/login", map[string]any{
		"username": "gmvishnu",
		"password": "hapchess1",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := decodeBody(t, resp)["data"].(map[string]any)
	assert.Equal(t, "gmvishnu", data["coach_id"])

	resp = postJSON(t, app, "/api/coaches/login", map[string]any{
		"username": "gmvishnu",
		"password": "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = postJSON(t, app, "/api/coaches/login", map[string]any{
		"username": "",
		"password": "",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	resp := getJSON(t, app, "/api/health")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}
