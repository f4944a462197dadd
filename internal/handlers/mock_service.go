package handlers

import (
	"context"
	"net/http"

	"driverlogs/internal/models"
	"driverlogs/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockDrivers struct {
	driver  *models.Driver
	list    []models.Driver
	total   int
	err     error
	lastGet string
	lastF   service.DriverFilter
}

func (m *mockDrivers) Create(ctx context.Context, d models.Driver) (*models.Driver, error) {
	return m.driver, m.err
}
func (m *mockDrivers) Get(ctx context.Context, id string) (*models.Driver, error) {
	m.lastGet = id
	return m.driver, m.err
}
func (m *mockDrivers) List(ctx context.Context, f service.DriverFilter) ([]models.Driver, int, error) {
	m.lastF = f
	return m.list, m.total, m.err
}
func (m *mockDrivers) Update(ctx context.Context, d models.Driver) (*models.Driver, error) {
	return m.driver, m.err
}
func (m *mockDrivers) Delete(ctx context.Context, id string) error {
	return m.err
}

type mockLogs struct {
	log        *models.DailyLog
	list       []models.DailyLog
	total      int
	err        error
	lastF      service.LogFilter
	lastCreate models.DailyLog
	lastUpdate models.DailyLog
	deleted    []string
}

func (m *mockLogs) Create(ctx context.Context, l models.DailyLog) (*models.DailyLog, error) {
	m.lastCreate = l
	return m.log, m.err
}
func (m *mockLogs) Get(ctx context.Context, id string) (*models.DailyLog, error) {
	return m.log, m.err
}
func (m *mockLogs) List(ctx context.Context, f service.LogFilter) ([]models.DailyLog, int, error) {
	m.lastF = f
	return m.list, m.total, m.err
}
func (m *mockLogs) Update(ctx context.Context, l models.DailyLog) (*models.DailyLog, error) {
	m.lastUpdate = l
	return m.log, m.err
}
func (m *mockLogs) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return m.err
}

type mockCompliance struct {
	result       models.ComplianceResult
	err          error
	lastStatuses []models.DutyStatus
}

func (m *mockCompliance) Check(statuses []models.DutyStatus) (models.ComplianceResult, error) {
	m.lastStatuses = statuses
	return m.result, m.err
}

type mockGPS struct {
	location *models.CachedLocation
	address  *models.Address
	batch    []service.BatchGeocodeItem
	distance float64
	legs     []models.RouteLeg
	route    *service.LogRoute
	err      error

	lastLocation  string
	lastUnit      string
	lastWaypoints []models.Coordinate
}

func (m *mockGPS) Geocode(ctx context.Context, location string) (*models.CachedLocation, error) {
	m.lastLocation = location
	return m.location, m.err
}
func (m *mockGPS) ReverseGeocode(ctx context.Context, lat, lng float64) (*models.Address, error) {
	return m.address, m.err
}
func (m *mockGPS) BatchGeocode(ctx context.Context, locations []string) []service.BatchGeocodeItem {
	return m.batch
}
func (m *mockGPS) Distance(start, end models.Coordinate, unit string) (float64, error) {
	m.lastUnit = unit
	return m.distance, m.err
}
func (m *mockGPS) RouteDistance(waypoints []models.Coordinate, unit string) (float64, []models.RouteLeg, error) {
	m.lastWaypoints = waypoints
	m.lastUnit = unit
	return m.distance, m.legs, m.err
}
func (m *mockGPS) LogRoute(ctx context.Context, logID string) (*service.LogRoute, error) {
	return m.route, m.err
}

type mockStats struct {
	driverStats    *service.DriverStats
	dashboard      *service.DashboardStats
	err            error
	lastDriverID   string
	lastParams     service.StatsParams
	dashboardCalls int
}

func (m *mockStats) DriverStats(ctx context.Context, driverID string, p service.StatsParams) (*service.DriverStats, error) {
	m.lastDriverID = driverID
	m.lastParams = p
	return m.driverStats, m.err
}
func (m *mockStats) DashboardStats(ctx context.Context) (*service.DashboardStats, error) {
	m.dashboardCalls++
	return m.dashboard, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
