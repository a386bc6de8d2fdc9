package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecotours/internal/api/controllers"
	"ecotours/internal/config"
	"ecotours/internal/models/db_models"
	"ecotours/internal/repositories"
	"ecotours/internal/services"
	"ecotours/internal/storage"
	"ecotours/internal/testutil"
	mem "ecotours/pkg/memcache"
	"ecotours/pkg/utils"
)

type testServer struct {
	engine *gin.Engine
	jwt    *utils.JWTManager
	mailer *testutil.RecordingMailer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.RegisterValidation()

	cfg := config.DefaultConfig()
	cfg.Server.Debug = true
	cfg.Server.MaxUploadBytes = 1 << 20
	cfg.Media.Root = t.TempDir()

	log := testutil.NopLogger()
	db := testutil.NewDB(t)
	store, err := storage.NewLocalStore(cfg.Media.Root, cfg.Media.URL)
	require.NoError(t, err)
	media := storage.NewMedia(store, storage.NewImageProcessor(storage.ImageOptions{MaxWidth: 1920, MaxHeight: 1080, Quality: 90}), log)

	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	mailer := &testutil.RecordingMailer{}
	notifier := services.NewNotificationService(mailer, "owner@example.com", log)

	placeRepo := repositories.NewPlaceRepository(db)
	placeService := services.NewPlaceService(placeRepo, media, log)

	ctl := Controllers{
		Accounts: controllers.NewAccountController(services.NewAccountService(
			repositories.NewAccountRepository(db), jwtManager, time.Hour, mailer, mem.NewResetTokens(), log)),
		Places:   controllers.NewPlaceController(placeService),
		Bookings: controllers.NewBookingController(services.NewBookingService(repositories.NewBookingRepository(db), placeRepo, notifier, log)),
		Items:    controllers.NewItemController(services.NewItemService(repositories.NewCrudRepository[db_models.Item](db), media, log)),
		Services: controllers.NewServiceController(services.NewServicesService(repositories.NewCrudRepository[db_models.Service](db), log)),
		Gallery:  controllers.NewGalleryController(services.NewGalleryService(repositories.NewCrudRepository[db_models.GalleryPhoto](db), media, log)),
		Posts:    controllers.NewPostController(services.NewPostService(repositories.NewCrudRepository[db_models.Post](db), media, log)),
		Front:    controllers.NewFrontController(services.NewFrontService(repositories.NewCrudRepository[db_models.Front](db), media, log)),
		Contacts: controllers.NewContactController(services.NewContactService(repositories.NewContactRepository(db), log)),
		UserDetails: controllers.NewUserDetailsController(services.NewUserDetailsService(
			repositories.NewCrudRepository[db_models.UserDetails](db), notifier, log)),
		Dashboard: controllers.NewDashboardController(services.NewDashboardService(repositories.NewDashboardRepository(db), log)),
		Health:    controllers.NewHealthController(db),
	}

	return &testServer{
		engine: NewRouter(cfg, log, jwtManager, ctl),
		jwt:    jwtManager,
		mailer: mailer,
	}
}

func (s *testServer) token(t *testing.T, role string) string {
	t.Helper()
	token, err := s.jwt.CreateToken(1, role)
	require.NoError(t, err)
	return token
}

func (s *testServer) do(t *testing.T, method, path string, body io.Reader, contentType, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) json(t *testing.T, method, path string, payload interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	return s.do(t, method, path, body, "application/json", token)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), into), rec.Body.String())
}

func TestRouter_PlaceAndBookingFlow(t *testing.T) {
	s := newTestServer(t)
	admin := s.token(t, db_models.RoleAdmin)
	png := testutil.PNG(t, 10, 10)

	body, contentType := testutil.MultipartBody(t, map[string]string{
		"name":           "Horton Plains",
		"price":          "250.50",
		"place_type":     "trending",
		"itinerary_days": `[{"day":1,"sub_description":"World's End"},{"day":2,"sub_description":"Baker's Falls"}]`,
	},
		testutil.Upload{Field: "main_image", Filename: "main.png", Data: png},
		testutil.Upload{Field: "sub_images", Filename: "s1.png", Data: png},
		testutil.Upload{Field: "sub_images", Filename: "s2.png", Data: png},
		testutil.Upload{Field: "itinerary_photos_1", Filename: "d2.png", Data: png},
	)
	rec := s.do(t, http.MethodPost, "/api/places/create/", body, contentType, admin)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var place struct {
		ID            uint    `json:"id"`
		Name          string  `json:"name"`
		Price         float64 `json:"price"`
		MainImage     string  `json:"main_image"`
		MainImageURL  string  `json:"main_image_url"`
		SubImages     []struct{ ID uint } `json:"sub_images"`
		ItineraryDays []struct {
			ID     uint `json:"id"`
			Day    int  `json:"day"`
			Photos []struct {
				ImageURL string `json:"image_url"`
			} `json:"photos"`
		} `json:"itinerary_days"`
	}
	decode(t, rec, &place)
	assert.Equal(t, "Horton Plains", place.Name)
	assert.Equal(t, 250.5, place.Price)
	assert.True(t, strings.HasPrefix(place.MainImageURL, "http://example.com/media/places/main/"), place.MainImageURL)
	assert.Len(t, place.SubImages, 2)
	require.Len(t, place.ItineraryDays, 2)
	assert.Empty(t, place.ItineraryDays[0].Photos)
	require.Len(t, place.ItineraryDays[1].Photos, 1)

	// stored files are served from the media root
	media := s.do(t, http.MethodGet, place.MainImage, nil, "", "")
	assert.Equal(t, http.StatusOK, media.Code)

	rec = s.json(t, http.MethodGet, "/api/bookings/places/", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":`+jsonID(place.ID)+`,"name":"Horton Plains","price":250.5}]`, rec.Body.String())

	rec = s.json(t, http.MethodPost, "/api/bookings/create/", map[string]interface{}{
		"place":         place.ID,
		"user_name":     "Sunil",
		"email":         "sunil@example.com",
		"arrival_date":  "2025-07-01",
		"adults":        2,
		"children":      1,
		"children_ages": []interface{}{6},
		"status":        "approved",
		"user":          99,
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var booking map[string]interface{}
	decode(t, rec, &booking)
	assert.Equal(t, "pending", booking["status"])
	assert.Nil(t, booking["user"])
	assert.Equal(t, []interface{}{"6"}, booking["children_ages"])
	assert.Equal(t, "2025-07-01", booking["arrival_date"])
	assert.Len(t, s.mailer.Messages(), 2)

	rec = s.json(t, http.MethodGet, "/api/bookings/", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	var bookings []map[string]interface{}
	decode(t, rec, &bookings)
	assert.Len(t, bookings, 1)

	rec = s.json(t, http.MethodDelete, "/api/places/"+jsonID(place.ID)+"/delete/", nil, admin)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.json(t, http.MethodGet, "/api/bookings/", nil, admin)
	decode(t, rec, &bookings)
	assert.Empty(t, bookings, "bookings go with their place")

	rec = s.json(t, http.MethodGet, "/api/places/"+jsonID(place.ID)+"/", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_PatchPlace(t *testing.T) {
	s := newTestServer(t)
	admin := s.token(t, db_models.RoleAdmin)

	rec := s.json(t, http.MethodPost, "/api/places/create/", map[string]interface{}{
		"name":  "Adam's Peak",
		"title": "Sri Pada",
		"price": 100,
		"itinerary_days": []map[string]interface{}{
			{"day": 1, "sub_description": "Night climb"},
		},
	}, admin)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ID uint `json:"id"`
	}
	decode(t, rec, &created)
	path := "/api/places/" + jsonID(created.ID) + "/update/"

	rec = s.json(t, http.MethodPatch, path, map[string]interface{}{"price": 120}, admin)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var patched map[string]interface{}
	decode(t, rec, &patched)
	assert.Equal(t, "Sri Pada", patched["title"])
	assert.Equal(t, 120.0, patched["price"])
	assert.Len(t, patched["itinerary_days"], 1)

	rec = s.json(t, http.MethodPut, path, map[string]interface{}{"price": 130}, admin)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var failed utils.APIResponse
	decode(t, rec, &failed)
	assert.Equal(t, []string{"This field is required."}, failed.Errors["name"])

	rec = s.json(t, http.MethodPatch, "/api/places/999/update/", map[string]interface{}{"price": 1}, admin)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_Authorization(t *testing.T) {
	s := newTestServer(t)
	item := map[string]interface{}{"title": "Jeep safari"}

	rec := s.json(t, http.MethodPost, "/api/items/create/", item, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.json(t, http.MethodPost, "/api/items/create/", item, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.json(t, http.MethodPost, "/api/items/create/", item, s.token(t, db_models.RoleCustomer))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.json(t, http.MethodGet, "/api/bookings/", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.json(t, http.MethodPost, "/api/items/create/", item, s.token(t, db_models.RoleAdmin))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = s.json(t, http.MethodGet, "/api/items/", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ValidationErrors(t *testing.T) {
	s := newTestServer(t)

	rec := s.json(t, http.MethodPost, "/api/bookings/create/", map[string]interface{}{
		"email":        "not-an-email",
		"arrival_date": "01/07/2025",
	}, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp utils.APIResponse
	decode(t, rec, &resp)
	assert.Equal(t, "error", resp.Status)
	assert.NotEmpty(t, resp.TraceID)
	assert.Equal(t, rec.Header().Get("X-Trace-ID"), resp.TraceID)
	assert.Contains(t, resp.Errors, "place")
	assert.Contains(t, resp.Errors, "user_name")
	assert.Equal(t, []string{"Enter a valid email address."}, resp.Errors["email"])
	assert.Equal(t, []string{"Date has wrong format. Use YYYY-MM-DD."}, resp.Errors["arrival_date"])

	rec = s.json(t, http.MethodPost, "/api/bookings/create/", map[string]interface{}{
		"place": 404, "user_name": "A", "email": "a@example.com", "arrival_date": "2025-01-01",
	}, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	decode(t, rec, &resp)
	assert.Equal(t, []string{`Invalid pk "404" - object does not exist.`}, resp.Errors["place"])
}

func TestRouter_BodyTooLarge(t *testing.T) {
	s := newTestServer(t)

	body, contentType := testutil.MultipartBody(t, map[string]string{"title": "Big"},
		testutil.Upload{Field: "image", Filename: "big.png", Data: bytes.Repeat([]byte{1}, 2<<20)})
	rec := s.do(t, http.MethodPost, "/api/items/create/", body, contentType, s.token(t, db_models.RoleAdmin))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestRouter_SocialLinksAndContactAlias(t *testing.T) {
	s := newTestServer(t)

	rec := s.json(t, http.MethodGet, "/api/social-links/", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"facebook_link":"","whatsapp_link":"","instagram_link":"","contact_number":""}`, rec.Body.String())

	rec = s.json(t, http.MethodPost, "/api/contacts/create/", map[string]interface{}{
		"contact_number": "+94 77 000 1111",
		"whatsapp_link":  "https://wa.me/94770001111",
	}, s.token(t, db_models.RoleAdmin))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.json(t, http.MethodGet, "/api/social-links/", nil, "")
	assert.JSONEq(t, `{"facebook_link":"","whatsapp_link":"https://wa.me/94770001111","instagram_link":"","contact_number":"+94 77 000 1111"}`, rec.Body.String())

	for _, path := range []string{"/api/contact/", "/api/contacts/"} {
		rec = s.json(t, http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var contacts []map[string]interface{}
		decode(t, rec, &contacts)
		assert.Len(t, contacts, 1, path)
	}
}

func TestRouter_AccountsAndMessages(t *testing.T) {
	s := newTestServer(t)

	rec := s.json(t, http.MethodPost, "/api/auth/register/", map[string]interface{}{
		"name": "Dilan", "email": "dilan@example.com", "password": "tea-estate-9",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.json(t, http.MethodPost, "/api/auth/login/", map[string]interface{}{
		"email": "dilan@example.com", "password": "tea-estate-9",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var login struct {
		Token string `json:"token"`
	}
	decode(t, rec, &login)

	rec = s.json(t, http.MethodGet, "/api/auth/me/", nil, login.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"dilan@example.com"`)

	rec = s.json(t, http.MethodPost, "/api/user/create/", map[string]interface{}{
		"user_name": "Dilan", "user_email": "dilan@example.com", "user_message": "Hello",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.json(t, http.MethodGet, "/api/user/", nil, login.Token)
	assert.Equal(t, http.StatusForbidden, rec.Code, "messages are staff only")

	rec = s.json(t, http.MethodPost, "/api/auth/password/reset/", map[string]interface{}{
		"token": "bogus", "password": "another-pass",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_HealthAndUnknownIDs(t *testing.T) {
	s := newTestServer(t)

	rec := s.json(t, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","database":"up"}`, rec.Body.String())

	rec = s.json(t, http.MethodGet, "/api/posts/abc/", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.json(t, http.MethodGet, "/api/posts/12/", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_Dashboard(t *testing.T) {
	s := newTestServer(t)

	rec := s.json(t, http.MethodGet, "/api/dashboard/stats/", nil, s.token(t, db_models.RoleCustomer))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.json(t, http.MethodGet, "/api/dashboard/stats/?interval=year", nil, s.token(t, db_models.RoleAdmin))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.json(t, http.MethodGet, "/api/dashboard/stats/?last_days=7&start=2025-01-01T00:00:00Z", nil, s.token(t, db_models.RoleAdmin))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.json(t, http.MethodGet, "/api/dashboard/stats/?last_days=7", nil, s.token(t, db_models.RoleAdmin))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var report struct {
		Range struct {
			Timezone string `json:"timezone"`
		} `json:"range"`
		KPIs map[string]interface{} `json:"kpis"`
	}
	decode(t, rec, &report)
	assert.Equal(t, "Asia/Colombo", report.Range.Timezone)
	assert.EqualValues(t, 0, report.KPIs["total_bookings"])
}

func TestRouter_PriceBounds(t *testing.T) {
	s := newTestServer(t)
	admin := s.token(t, db_models.RoleAdmin)

	for _, tc := range []struct {
		price   interface{}
		message string
	}{
		{1e9, "Ensure this value is less than or equal to 99999999.99."},
		{50.125, "Ensure that there are no more than 2 decimal places."},
	} {
		rec := s.json(t, http.MethodPost, "/api/places/create/", map[string]interface{}{
			"name": "Yala", "price": tc.price,
		}, admin)
		require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		var resp utils.APIResponse
		decode(t, rec, &resp)
		assert.Equal(t, []string{tc.message}, resp.Errors["price"])
	}

	body, contentType := testutil.MultipartBody(t, map[string]string{"name": "Yala", "price": "50.125"})
	rec := s.do(t, http.MethodPost, "/api/places/create/", body, contentType, admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	rec = s.json(t, http.MethodPost, "/api/places/create/", map[string]interface{}{
		"name": "Yala", "price": 99999999.99,
	}, admin)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var place struct {
		ID    uint    `json:"id"`
		Price float64 `json:"price"`
	}
	decode(t, rec, &place)
	assert.Equal(t, 99999999.99, place.Price)

	for _, tc := range []struct {
		price   interface{}
		message string
	}{
		{1e9, "Ensure this value is less than or equal to 99999999.99."},
		{50.125, "Ensure that there are no more than 2 decimal places."},
	} {
		rec = s.json(t, http.MethodPost, "/api/bookings/create/", map[string]interface{}{
			"place": place.ID, "user_name": "Nimal", "email": "nimal@example.com",
			"arrival_date": "2025-08-01", "price": tc.price,
		}, "")
		require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		var resp utils.APIResponse
		decode(t, rec, &resp)
		assert.Equal(t, []string{tc.message}, resp.Errors["price"])
	}
}

func TestRouter_PatchRejectsNull(t *testing.T) {
	s := newTestServer(t)
	admin := s.token(t, db_models.RoleAdmin)

	rec := s.json(t, http.MethodPost, "/api/services/create/", map[string]interface{}{
		"service_title": "Guides", "service_description": "Licensed naturalists",
	}, admin)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ID uint `json:"id"`
	}
	decode(t, rec, &created)
	path := "/api/services/" + jsonID(created.ID) + "/update/"

	rec = s.do(t, http.MethodPatch, path, strings.NewReader(`{"service_title":null}`), "application/json", admin)
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	var resp utils.APIResponse
	decode(t, rec, &resp)
	assert.Equal(t, []string{"This field may not be null."}, resp.Errors["service_title"])

	rec = s.do(t, http.MethodPatch, path, strings.NewReader(`{"service_description":"Birders"}`), "application/json", admin)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"service_title":"Guides"`)

	rec = s.do(t, http.MethodPatch, "/api/places/999/update/", strings.NewReader(`{"name":null}`), "application/json", admin)
	assert.Equal(t, http.StatusNotFound, rec.Code, "unknown rows answer 404 before the body is read")
}

func TestRouter_ImageDeletes(t *testing.T) {
	s := newTestServer(t)
	admin := s.token(t, db_models.RoleAdmin)
	png := testutil.PNG(t, 8, 8)

	body, contentType := testutil.MultipartBody(t, map[string]string{
		"name":           "Knuckles",
		"itinerary_days": `[{"day":1}]`,
	},
		testutil.Upload{Field: "sub_images", Filename: "s.png", Data: png},
		testutil.Upload{Field: "itinerary_photos_0", Filename: "d.png", Data: png},
	)
	rec := s.do(t, http.MethodPost, "/api/places/create/", body, contentType, admin)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var place struct {
		ID        uint `json:"id"`
		SubImages []struct {
			ID uint `json:"id"`
		} `json:"sub_images"`
		ItineraryDays []struct {
			Photos []struct {
				ID uint `json:"id"`
			} `json:"photos"`
		} `json:"itinerary_days"`
	}
	decode(t, rec, &place)
	require.Len(t, place.SubImages, 1)
	require.Len(t, place.ItineraryDays, 1)
	require.Len(t, place.ItineraryDays[0].Photos, 1)

	for _, path := range []string{
		"/api/places/itinerary-photo/" + jsonID(place.ItineraryDays[0].Photos[0].ID) + "/delete/",
		"/api/places/sub-image/" + jsonID(place.SubImages[0].ID) + "/delete/",
	} {
		rec = s.json(t, http.MethodDelete, path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		rec = s.json(t, http.MethodDelete, path, nil, admin)
		assert.Equal(t, http.StatusNoContent, rec.Code, path)
		rec = s.json(t, http.MethodDelete, path, nil, admin)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}

	rec = s.json(t, http.MethodGet, "/api/places/"+jsonID(place.ID)+"/", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &place)
	assert.Empty(t, place.SubImages)
	assert.Empty(t, place.ItineraryDays[0].Photos)

	var ids []uint
	for _, path := range []string{"/api/gallery/photos/", "/api/gallery/photos/create/"} {
		body, contentType = testutil.MultipartBody(t, nil, testutil.Upload{Field: "image", Filename: "g.png", Data: png})
		rec = s.do(t, http.MethodPost, path, body, contentType, admin)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var photo struct {
			ID       uint   `json:"id"`
			ImageURL string `json:"image_url"`
		}
		decode(t, rec, &photo)
		assert.True(t, strings.HasPrefix(photo.ImageURL, "http://example.com/media/gallery/"), photo.ImageURL)
		ids = append(ids, photo.ID)
	}

	rec = s.json(t, http.MethodGet, "/api/gallery/photos/", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var photos []map[string]interface{}
	decode(t, rec, &photos)
	assert.Len(t, photos, 2)

	path := "/api/gallery/photos/" + jsonID(ids[0]) + "/delete/"
	rec = s.json(t, http.MethodDelete, path, nil, admin)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = s.json(t, http.MethodDelete, path, nil, admin)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func jsonID(id uint) string {
	raw, _ := json.Marshal(id)
	return string(raw)
}
