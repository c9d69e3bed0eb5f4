package server

import (
	"MovingAssistant/cmd"
	"MovingAssistant/internal/config"
	"MovingAssistant/internal/dto"
	"MovingAssistant/internal/handlers"
	"MovingAssistant/internal/models"
	"MovingAssistant/internal/repository"
	"MovingAssistant/internal/services"
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var clockStart = time.Date(2024, time.May, 17, 9, 0, 0, 0, time.UTC)

type testStack struct {
	app   *fiber.App
	db    *gorm.DB
	clock clockwork.FakeClock
}

func setupStack(t *testing.T) *testStack {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&models.MovingSession{}, &models.MovingBox{}))

	cfg := &config.Configuration{}
	cfg.Server.Concurrency = 1
	cfg.Server.RequestConfig.SizeLimit = 1
	cfg.Owner.DefaultID = 1

	clock := clockwork.NewFakeClockAt(clockStart)
	logService := services.NewDiscardLogService()
	sessionRepo := repository.NewMovingSessionRepository(db)
	boxRepo := repository.NewMovingBoxRepository(db)
	sessionService := services.NewMovingSessionService(sessionRepo, clock, logService, cfg)
	boxService := services.NewMovingBoxService(boxRepo, sessionRepo, clock, logService)
	reporter := services.NewReportService(sessionRepo, boxRepo, clock, logService, cfg)

	server := cmd.NewServer(
		cfg,
		db,
		logService,
		sessionService,
		boxService,
		handlers.NewMovingHandler(sessionService, boxService, logService),
		reporter,
		handlers.NewReportHandler(reporter, logService),
	)
	return &testStack{app: NewApp(server), db: db, clock: clock}
}

func (s *testStack) do(t *testing.T, method string, path string, body interface{}) (int, []byte) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func (s *testStack) createSession(t *testing.T, title string) dto.CreateMovingSessionResponse {
	status, raw := s.do(t, http.MethodPost, "/api/v1/moving/session", dto.CreateMovingSessionDto{Title: title})
	require.Equal(t, http.StatusOK, status, string(raw))
	var session dto.CreateMovingSessionResponse
	require.NoError(t, json.Unmarshal(raw, &session))
	return session
}

func (s *testStack) createBox(t *testing.T, sessionID uint, title string) dto.MovingBoxDto {
	status, raw := s.do(t, http.MethodPost, "/api/v1/moving/session/"+itoa(sessionID)+"/newBox", dto.CreateMovingBoxDto{Title: title})
	require.Equal(t, http.StatusOK, status, string(raw))
	var box dto.MovingBoxDto
	require.NoError(t, json.Unmarshal(raw, &box))
	return box
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func TestCreateSession_IdsIncreaseAndDateIsToday(t *testing.T) {
	stack := setupStack(t)

	first := stack.createSession(t, "FirstSession")
	second := stack.createSession(t, "SecondSession")

	assert.Equal(t, "FirstSession", first.Title)
	assert.Equal(t, "2024-05-17", first.CreatedAt)
	assert.Greater(t, second.ID, first.ID)
}

func TestCreateSession_BlankTitlePersistsNothing(t *testing.T) {
	stack := setupStack(t)

	status, _ := stack.do(t, http.MethodPost, "/api/v1/moving/session", dto.CreateMovingSessionDto{Title: " "})

	assert.Equal(t, http.StatusBadRequest, status)
	var count int64
	require.NoError(t, stack.db.Model(&models.MovingSession{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetSession(t *testing.T) {
	stack := setupStack(t)
	session := stack.createSession(t, "FirstSession")

	status, raw := stack.do(t, http.MethodGet, "/api/v1/moving/session/"+itoa(session.ID), nil)

	require.Equal(t, http.StatusOK, status)
	var found dto.MovingSessionDto
	require.NoError(t, json.Unmarshal(raw, &found))
	assert.Equal(t, dto.MovingSessionDto{ID: session.ID, OwnerID: 1, Title: "FirstSession", CreatedAt: "2024-05-17"}, found)
}

func TestCreateNewBox(t *testing.T) {
	stack := setupStack(t)
	session := stack.createSession(t, "FirstSession")

	box := stack.createBox(t, session.ID, "BoxName")

	assert.Equal(t, "BoxName", box.Title)
	assert.Equal(t, session.ID, box.SessionID)
	assert.Equal(t, "2024-05-17", box.CreatedAt)
	assert.False(t, box.Archived)
	assert.NotNil(t, box.Extras.Items)
	assert.Empty(t, box.Extras.Items)
}

func TestCreateNewBox_UnknownSessionPersistsNothing(t *testing.T) {
	stack := setupStack(t)

	status, _ := stack.do(t, http.MethodPost, "/api/v1/moving/session/404/newBox", dto.CreateMovingBoxDto{Title: "Orphan"})

	assert.Equal(t, http.StatusNotFound, status)
	var count int64
	require.NoError(t, stack.db.Model(&models.MovingBox{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestEditItemsBox(t *testing.T) {
	stack := setupStack(t)
	session := stack.createSession(t, "FirstSession")
	box := stack.createBox(t, session.ID, "BoxName")
	path := "/api/v1/moving/session/" + itoa(session.ID) + "/box/" + itoa(box.ID) + "/editItems"

	status, _ := stack.do(t, http.MethodPost, path, dto.MovingBoxExtrasDto{Items: []string{"old"}})
	require.Equal(t, http.StatusOK, status)

	stack.clock.Advance(24 * time.Hour)
	status, raw := stack.do(t, http.MethodPost, path, dto.MovingBoxExtrasDto{Items: []string{"firstItem", "secondItem"}})

	require.Equal(t, http.StatusOK, status)
	var edited dto.MovingBoxDto
	require.NoError(t, json.Unmarshal(raw, &edited))
	assert.Equal(t, "BoxName", edited.Title)
	assert.Equal(t, session.ID, edited.SessionID)
	assert.Equal(t, "2024-05-17", edited.CreatedAt)
	assert.Equal(t, "2024-05-18", edited.UpdatedAt)
	assert.Equal(t, []string{"firstItem", "secondItem"}, edited.Extras.Items)
}

func TestEditItemsBox_WrongSession(t *testing.T) {
	stack := setupStack(t)
	first := stack.createSession(t, "FirstSession")
	second := stack.createSession(t, "SecondSession")
	box := stack.createBox(t, first.ID, "BoxName")

	status, _ := stack.do(t, http.MethodPost,
		"/api/v1/moving/session/"+itoa(second.ID)+"/box/"+itoa(box.ID)+"/editItems",
		dto.MovingBoxExtrasDto{Items: []string{"a"}})

	assert.Equal(t, http.StatusNotFound, status)
}

func TestGetBoxes(t *testing.T) {
	stack := setupStack(t)
	session := stack.createSession(t, "FirstSession")
	created := stack.createBox(t, session.ID, "oneBoxName")
	stack.createBox(t, session.ID, "twoBoxName")

	status, raw := stack.do(t, http.MethodGet, "/api/v1/moving/session/"+itoa(session.ID)+"/boxes", nil)

	require.Equal(t, http.StatusOK, status)
	var boxes []dto.MovingBoxDto
	require.NoError(t, json.Unmarshal(raw, &boxes))
	require.Len(t, boxes, 2)
	assert.Equal(t, "oneBoxName", boxes[0].Title)
	assert.Equal(t, "twoBoxName", boxes[1].Title)
	assert.Equal(t, session.ID, boxes[0].SessionID)
	assert.Equal(t, session.ID, boxes[1].SessionID)
	assert.Equal(t, created.CreatedAt, boxes[0].CreatedAt)
	assert.NotNil(t, boxes[0].Extras.Items)
}

func TestGetBoxes_Filter(t *testing.T) {
	stack := setupStack(t)
	session := stack.createSession(t, "FirstSession")
	stack.createBox(t, session.ID, "Kitchen")
	bedroom := stack.createBox(t, session.ID, "Bedroom")
	status, _ := stack.do(t, http.MethodPost,
		"/api/v1/moving/session/"+itoa(session.ID)+"/box/"+itoa(bedroom.ID)+"/editItems",
		dto.MovingBoxExtrasDto{Items: []string{"lamp"}})
	require.Equal(t, http.StatusOK, status)

	for filter, expected := range map[string][]string{
		"Kitchen": {"Kitchen"},
		"lamp":    {"Bedroom"},
		"NoMatch": {},
	} {
		status, raw := stack.do(t, http.MethodGet, "/api/v1/moving/session/"+itoa(session.ID)+"/boxes?item="+filter, nil)
		require.Equal(t, http.StatusOK, status)
		var boxes []dto.MovingBoxDto
		require.NoError(t, json.Unmarshal(raw, &boxes))
		titles := make([]string, 0, len(boxes))
		for _, box := range boxes {
			titles = append(titles, box.Title)
		}
		assert.Equal(t, expected, titles, filter)
	}
}

func TestReportAndMetrics(t *testing.T) {
	stack := setupStack(t)
	session := stack.createSession(t, "FirstSession")
	stack.createBox(t, session.ID, "BoxName")

	status, raw := stack.do(t, http.MethodPost, "/api/v1/moving/report", nil)
	require.Equal(t, http.StatusOK, status)
	var report dto.InventoryReportDto
	require.NoError(t, json.Unmarshal(raw, &report))
	assert.Equal(t, dto.InventoryReportDto{Sessions: 1, Boxes: 1, ArchivedBoxes: 0, GeneratedAt: "2024-05-17"}, report)

	status, raw = stack.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(raw), "moving_boxes_created_total")
}
