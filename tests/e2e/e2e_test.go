package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"photoorders/internal/database"
	"photoorders/internal/domain"
	"photoorders/internal/middleware"
	"photoorders/internal/modules/appstatus"
	"photoorders/internal/modules/auth"
	"photoorders/internal/modules/catalog"
	"photoorders/internal/modules/kindergarten"
	"photoorders/internal/modules/order"
	"photoorders/internal/modules/pricing"
	"photoorders/internal/modules/request"
	jwtsvc "photoorders/internal/pkg/jwt"
	"photoorders/internal/repository"
)

const devCode = "000000"

type suite struct {
	router *gin.Engine
	db     *gorm.DB
	jwt    *jwtsvc.Service
}

type envelope struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *errorDetail           `json:"error,omitempty"`
}

type errorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupSuite(t *testing.T) *suite {
	gin.SetMode(gin.TestMode)

	// Unique in-memory DB per suite so tests stay independent.
	dsn := fmt.Sprintf("file:e2e%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	j := jwtsvc.New("e2e-secret", time.Hour)

	userRepo := repository.NewUserRepository(db)
	paperSizeRepo := repository.NewPaperSizeRepository(db)
	additionRepo := repository.NewServiceAdditionRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	themeRepo := repository.NewThemeRepository(db)
	serviceTypeRepo := repository.NewServiceTypeRepository(db)
	costumeRepo := repository.NewCostumeRepository(db)
	sampleRepo := repository.NewStudioSampleRepository(db)
	kindergartenRepo := repository.NewKindergartenRepository(db)
	preschoolRepo := repository.NewPreschoolRepository(db)
	appConfigRepo := repository.NewAppConfigRepository(db)
	kReqRepo := repository.NewKindergartenRequestRepository(db)
	sReqRepo := repository.NewServiceRequestRepository(db)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j, auth.DevVerifier{Code: devCode}))
	catalogHandler := catalog.NewHandler(catalog.NewService(
		paperSizeRepo, additionRepo, packageRepo, themeRepo,
		serviceTypeRepo, costumeRepo, sampleRepo,
	))
	kindergartenHandler := kindergarten.NewHandler(kindergarten.NewService(kindergartenRepo, preschoolRepo))

	engine := pricing.NewEngine(paperSizeRepo, additionRepo, packageRepo, themeRepo, costumeRepo)
	requestHandler := request.NewHandler(request.NewService(kReqRepo, sReqRepo, engine, userRepo))
	orderHandler := order.NewHandler(order.NewService(userRepo, kReqRepo, sReqRepo))

	hub := appstatus.NewHub()
	t.Cleanup(hub.Close)
	statusHandler := appstatus.NewHandler(appstatus.NewService(appConfigRepo, hub), hub)

	r := gin.New()
	v1 := r.Group("/api/v1")
	authHandler.RegisterRoutes(v1)
	catalogHandler.RegisterRoutes(v1)
	kindergartenHandler.RegisterRoutes(v1)
	statusHandler.RegisterRoutes(v1)

	protected := v1.Group("/")
	protected.Use(middleware.JWTAuth(j))
	requestHandler.RegisterRoutes(protected)
	orderHandler.RegisterRoutes(protected)

	admin := v1.Group("/admin")
	admin.Use(middleware.JWTAuth(j), middleware.AdminOnly())
	authHandler.RegisterAdminRoutes(admin)
	catalogHandler.RegisterAdminRoutes(admin)
	kindergartenHandler.RegisterAdminRoutes(admin)
	requestHandler.RegisterAdminRoutes(admin)
	statusHandler.RegisterAdminRoutes(admin)

	return &suite{router: r, db: db, jwt: j}
}

func (s *suite) do(t *testing.T, method, path string, body interface{}, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func (s *suite) registerClient(t *testing.T, phone string) string {
	t.Helper()

	w, _ := s.do(t, http.MethodPost, "/api/v1/auth/register", gin.H{"phone": phone, "name": "Client"}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = s.do(t, http.MethodPost, "/api/v1/auth/verify", gin.H{"phone": phone}, "")
	require.Equal(t, http.StatusOK, w.Code)

	w, env := s.do(t, http.MethodPost, "/api/v1/auth/verify/check", gin.H{"phone": phone, "code": devCode}, "")
	require.Equal(t, http.StatusOK, w.Code)

	token, _ := env.Data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func (s *suite) adminToken(t *testing.T) string {
	t.Helper()

	hash, err := auth.HashPassword("admin123")
	require.NoError(t, err)
	admin := domain.User{
		Phone:        fmt.Sprintf("7700%d", time.Now().UnixNano()%1_000_000_0),
		Email:        "admin@example.kz",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}
	require.NoError(t, s.db.Create(&admin).Error)

	token, err := s.jwt.GenerateToken(admin.ID, string(domain.RoleAdmin))
	require.NoError(t, err)
	return token
}

type fixtures struct {
	size    domain.PaperSize
	magnet  domain.ServiceAddition
	costume domain.Costume
	garden  domain.Kindergarten
	class   domain.KindergartenClass
	pkg     domain.Package
	theme   domain.Theme
	svcType domain.ServiceType
}

func (s *suite) seedCatalog(t *testing.T) fixtures {
	t.Helper()

	f := fixtures{
		size:    domain.PaperSize{Size: "15x21", Price: 900, Discount: 10, NetPrice: 810},
		magnet:  domain.ServiceAddition{Name: "Магнит", Service: domain.AdditionKindergarten, PerItem: true, Price: 700, NetPrice: 700},
		costume: domain.Costume{Title: "Космонавт", ImagePath: "costumes/cosmonaut.jpg"},
		garden:  domain.Kindergarten{Name: "Балдырған", District: "Алмалинский", Active: true},
		pkg:     domain.Package{Name: "Стандарт", Quantity: 10, Price: 14000, Discount: 10, NetPrice: 12600},
		theme:   domain.Theme{Title: "Новый год", AdditionalCharge: 2000, ShowInStudio: true},
	}
	require.NoError(t, s.db.Create(&f.size).Error)
	require.NoError(t, s.db.Create(&f.magnet).Error)
	require.NoError(t, s.db.Create(&f.costume).Error)
	require.NoError(t, s.db.Create(&f.garden).Error)
	f.class = domain.KindergartenClass{KindergartenID: f.garden.ID, Name: "Старшая группа", Active: true}
	require.NoError(t, s.db.Create(&f.class).Error)
	require.NoError(t, s.db.Create(&f.pkg).Error)
	require.NoError(t, s.db.Create(&f.theme).Error)
	f.svcType = domain.ServiceType{Name: "Тематическая фотосессия", ThemeBased: true, Themes: []int64{f.theme.ID}, Packages: []int64{f.pkg.ID}}
	require.NoError(t, s.db.Create(&f.svcType).Error)
	return f
}

func kindergartenDraft(f fixtures) gin.H {
	return gin.H{
		"kindergarten_id":       f.garden.ID,
		"kindergarten_class_id": f.class.ID,
		"child_name":            "Айша",
		"costumes": []gin.H{
			{"costume_id": f.costume.ID, "size_id": f.size.ID, "additions": []int64{f.magnet.ID}},
		},
		"additional_fees": 90,
	}
}

func TestAuthFlow(t *testing.T) {
	s := setupSuite(t)

	phone := "77001112233"
	w, env := s.do(t, http.MethodPost, "/api/v1/auth/register", gin.H{"phone": phone, "name": "Асель"}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)

	// Duplicate registration is rejected.
	w, env = s.do(t, http.MethodPost, "/api/v1/auth/register", gin.H{"phone": phone}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "PHONE_EXISTS", env.Error.Code)

	w, env = s.do(t, http.MethodPost, "/api/v1/auth/exists", gin.H{"phone": phone}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, env.Data["exists"])

	w, _ = s.do(t, http.MethodPost, "/api/v1/auth/verify", gin.H{"phone": phone}, "")
	require.Equal(t, http.StatusOK, w.Code)

	// Immediate resend hits the cooldown.
	w, env = s.do(t, http.MethodPost, "/api/v1/auth/verify", gin.H{"phone": phone}, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", env.Error.Code)

	w, env = s.do(t, http.MethodPost, "/api/v1/auth/verify/check", gin.H{"phone": phone, "code": "999999"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "VERIFICATION_FAILED", env.Error.Code)

	w, env = s.do(t, http.MethodPost, "/api/v1/auth/verify/check", gin.H{"phone": phone, "code": devCode}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, env.Data["token"])

	// Unknown phone cannot start verification.
	w, env = s.do(t, http.MethodPost, "/api/v1/auth/verify", gin.H{"phone": "77009990000"}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestAdminLogin(t *testing.T) {
	s := setupSuite(t)
	s.adminToken(t) // creates the admin row

	w, env := s.do(t, http.MethodPost, "/api/v1/auth/admin/login", gin.H{"email": "admin@example.kz", "password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)

	w, env = s.do(t, http.MethodPost, "/api/v1/auth/admin/login", gin.H{"email": "Admin@Example.kz", "password": "admin123"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, env.Data["token"])
}

func TestAdminRoutesRejectClients(t *testing.T) {
	s := setupSuite(t)
	clientToken := s.registerClient(t, "77001112233")

	w, env := s.do(t, http.MethodGet, "/api/v1/admin/users", nil, clientToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)

	w, _ = s.do(t, http.MethodGet, "/api/v1/admin/users", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	s := setupSuite(t)

	w, _ := s.do(t, http.MethodGet, "/api/v1/orders", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = s.do(t, http.MethodGet, "/api/v1/kindergarten-requests", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestKindergartenRequestLifecycle(t *testing.T) {
	s := setupSuite(t)
	f := s.seedCatalog(t)
	clientToken := s.registerClient(t, "77001112233")
	otherToken := s.registerClient(t, "77004445566")
	adminToken := s.adminToken(t)

	// Create: size 810 net + magnet 700 + 90 fees.
	w, env := s.do(t, http.MethodPost, "/api/v1/kindergarten-requests", kindergartenDraft(f), clientToken)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "INIT", env.Data["status"])
	assert.Equal(t, 1600.0, env.Data["net_price"])
	assert.Regexp(t, `^K-[A-Z0-9]{6}$`, env.Data["request_id"])
	id := int64(env.Data["id"].(float64))

	path := fmt.Sprintf("/api/v1/kindergarten-requests/%d", id)

	// Owner can read it, another client cannot.
	w, _ = s.do(t, http.MethodGet, path, nil, clientToken)
	assert.Equal(t, http.StatusOK, w.Code)
	w, env = s.do(t, http.MethodGet, path, nil, otherToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)

	// Unknown costume is rejected before persistence.
	bad := kindergartenDraft(f)
	bad["costumes"] = []gin.H{{"costume_id": 9999, "size_id": f.size.ID}}
	w, env = s.do(t, http.MethodPost, "/api/v1/kindergarten-requests", bad, clientToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)

	// Admin moves it to processing.
	w, env = s.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/admin/kindergarten-requests/%d/status", id), gin.H{"status": "proc"}, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "PROC", env.Data["status"])

	// Client cancel is INIT-only.
	w, env = s.do(t, http.MethodPost, path+"/cancel", nil, clientToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "REQUEST_CLOSED", env.Error.Code)

	// Fee change shifts the net price by the delta.
	w, env = s.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/admin/kindergarten-requests/%d/fees", id), gin.H{"additional_fees": 190}, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1700.0, env.Data["net_price"])

	// Complete, then every further transition is refused.
	w, env = s.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/admin/kindergarten-requests/%d/status", id), gin.H{"status": "COMP"}, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "COMP", env.Data["status"])

	w, env = s.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/admin/kindergarten-requests/%d/status", id), gin.H{"status": "PROC"}, adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_TRANSITION", env.Error.Code)

	// Editing a completed request is refused too.
	w, env = s.do(t, http.MethodPut, path, kindergartenDraft(f), clientToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "REQUEST_CLOSED", env.Error.Code)
}

func TestClientCancelFromInit(t *testing.T) {
	s := setupSuite(t)
	f := s.seedCatalog(t)
	clientToken := s.registerClient(t, "77001112233")

	w, env := s.do(t, http.MethodPost, "/api/v1/kindergarten-requests", kindergartenDraft(f), clientToken)
	require.Equal(t, http.StatusCreated, w.Code)
	id := int64(env.Data["id"].(float64))

	w, env = s.do(t, http.MethodPost, fmt.Sprintf("/api/v1/kindergarten-requests/%d/cancel", id), nil, clientToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "CANC", env.Data["status"])
}

func TestServiceRequestAndOrders(t *testing.T) {
	s := setupSuite(t)
	f := s.seedCatalog(t)
	clientToken := s.registerClient(t, "77001112233")

	w, env := s.do(t, http.MethodPost, "/api/v1/kindergarten-requests", kindergartenDraft(f), clientToken)
	require.Equal(t, http.StatusCreated, w.Code)

	// Package 12600 net + theme charge 2000.
	draft := gin.H{
		"type_id":    f.svcType.ID,
		"theme_id":   f.theme.ID,
		"package_id": f.pkg.ID,
	}
	w, env = s.do(t, http.MethodPost, "/api/v1/service-requests", draft, clientToken)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 14600.0, env.Data["net_price"])
	assert.Regexp(t, `^S-[a-zA-Z0-9]{10}$`, env.Data["request_id"])

	// Both requests show up in the merged order feed.
	w, env = s.do(t, http.MethodGet, "/api/v1/orders/count", nil, clientToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2.0, env.Data["count"])

	w, env = s.do(t, http.MethodGet, "/api/v1/orders", nil, clientToken)
	require.Equal(t, http.StatusOK, w.Code)
	orders, ok := env.Data["orders"].([]interface{})
	require.True(t, ok)
	require.Len(t, orders, 2)

	// Newest first: the service request was placed second.
	first, ok := orders[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "service", first["type"])

	// Unknown theme is refused.
	bad := gin.H{"type_id": f.svcType.ID, "theme_id": 9999, "package_id": f.pkg.ID}
	w, env = s.do(t, http.MethodPost, "/api/v1/service-requests", bad, clientToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestBulkStatusTransition(t *testing.T) {
	s := setupSuite(t)
	f := s.seedCatalog(t)
	clientToken := s.registerClient(t, "77001112233")
	adminToken := s.adminToken(t)

	var ids []int64
	for i := 0; i < 3; i++ {
		w, env := s.do(t, http.MethodPost, "/api/v1/kindergarten-requests", kindergartenDraft(f), clientToken)
		require.Equal(t, http.StatusCreated, w.Code)
		ids = append(ids, int64(env.Data["id"].(float64)))
	}

	// Close one request so the bulk move skips it.
	w, _ := s.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/admin/kindergarten-requests/%d/status", ids[1]), gin.H{"status": "CANC"}, adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	w, env := s.do(t, http.MethodPatch, "/api/v1/admin/kindergarten-requests/status", gin.H{"ids": ids, "status": "PROC"}, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2.0, env.Data["updated"])

	// Nothing left to move once every target is terminal.
	w, _ = s.do(t, http.MethodPatch, "/api/v1/admin/kindergarten-requests/status", gin.H{"ids": ids, "status": "COMP"}, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	w, env = s.do(t, http.MethodPatch, "/api/v1/admin/kindergarten-requests/status", gin.H{"ids": ids, "status": "CANC"}, adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "NOTHING_TO_UPDATE", env.Error.Code)
}

func TestCatalogAdminCRUD(t *testing.T) {
	s := setupSuite(t)
	adminToken := s.adminToken(t)

	w, env := s.do(t, http.MethodPost, "/api/v1/admin/paper-sizes", gin.H{"size": "21x30", "price": 1500, "discount": 20}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code)
	created, ok := env.Data["paper_size"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 1200.0, created["net_price"])
	id := int64(created["id"].(float64))

	// Public read needs no token.
	w, env = s.do(t, http.MethodGet, "/api/v1/paper-sizes", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	sizes, ok := env.Data["paper_sizes"].([]interface{})
	require.True(t, ok)
	assert.Len(t, sizes, 1)

	w, env = s.do(t, http.MethodPut, fmt.Sprintf("/api/v1/admin/paper-sizes/%d", id), gin.H{"size": "21x30", "price": 1500, "discount": 0}, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	updated, ok := env.Data["paper_size"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 1500.0, updated["net_price"])

	w, _ = s.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/paper-sizes/%d", id), nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = s.do(t, http.MethodGet, fmt.Sprintf("/api/v1/paper-sizes/%d", id), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestKindergartenDirectory(t *testing.T) {
	s := setupSuite(t)
	f := s.seedCatalog(t)
	adminToken := s.adminToken(t)

	// Inactive kindergartens stay out of the default listing.
	w, _ := s.do(t, http.MethodPost, "/api/v1/admin/kindergartens", gin.H{"name": "Ақбота", "district": "Медеуский", "active": false}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := s.do(t, http.MethodGet, "/api/v1/kindergartens", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	gardens, ok := env.Data["kindergartens"].([]interface{})
	require.True(t, ok)
	assert.Len(t, gardens, 1)

	w, env = s.do(t, http.MethodGet, "/api/v1/kindergartens?all=true", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	gardens, ok = env.Data["kindergartens"].([]interface{})
	require.True(t, ok)
	assert.Len(t, gardens, 2)

	w, env = s.do(t, http.MethodGet, fmt.Sprintf("/api/v1/kindergartens/%d/classes", f.garden.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	classes, ok := env.Data["classes"].([]interface{})
	require.True(t, ok)
	assert.Len(t, classes, 1)
}

func TestAppStatusGate(t *testing.T) {
	s := setupSuite(t)
	adminToken := s.adminToken(t)

	// No row yet: the app presents as under maintenance.
	w, env := s.do(t, http.MethodGet, "/api/v1/app-status", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "MAINT", env.Data["status"])

	w, env = s.do(t, http.MethodPatch, "/api/v1/admin/app-status", gin.H{"status": "live"}, adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = s.do(t, http.MethodGet, "/api/v1/app-status", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "LIVE", env.Data["status"])

	w, env = s.do(t, http.MethodPatch, "/api/v1/admin/app-status", gin.H{"status": "broken"}, adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminUserBrowser(t *testing.T) {
	s := setupSuite(t)
	s.registerClient(t, "77001112233")
	s.registerClient(t, "77004445566")
	adminToken := s.adminToken(t)

	w, env := s.do(t, http.MethodGet, "/api/v1/admin/users?filter[role]=client", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	users, ok := env.Data["users"].([]interface{})
	require.True(t, ok)
	assert.Len(t, users, 2)

	w, env = s.do(t, http.MethodGet, "/api/v1/admin/users/count?filter[role]=client", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2.0, env.Data["count"])
}
