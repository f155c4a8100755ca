package httptransport_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rqapp/rq-mobile-api/internal/catalog"
	"github.com/rqapp/rq-mobile-api/internal/random"
	"github.com/rqapp/rq-mobile-api/internal/store"
	"github.com/rqapp/rq-mobile-api/internal/token"
	httptransport "github.com/rqapp/rq-mobile-api/internal/transport/http"
	"github.com/rqapp/rq-mobile-api/internal/transport/http/handler"
	"github.com/rqapp/rq-mobile-api/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestApp wires the whole API over a seeded catalog, the way main does.
func newTestApp(t *testing.T) *gin.Engine {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rng := random.New(42)
	st := store.New(catalog.Generate(rng))
	issuer := token.NewMockIssuer()

	return httptransport.NewRouter(
		logger,
		handler.NewAuthHandler(usecase.NewAuthUsecase(st, issuer), logger),
		handler.NewPropertyHandler(usecase.NewPropertyUsecase(st, rng), logger),
		handler.NewSavedHandler(usecase.NewSavedUsecase(st, rng), logger),
		handler.NewUserHandler(usecase.NewUserUsecase(st), logger),
		handler.NewNotificationHandler(usecase.NewNotificationUsecase(rng), logger),
		handler.NewBillingHandler(usecase.NewBillingUsecase(), logger),
	)
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestHealthPing(t *testing.T) {
	w := do(t, newTestApp(t), http.MethodGet, "/health/ping", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestSearch_FirstPageOfFiftyProperties(t *testing.T) {
	w := do(t, newTestApp(t), http.MethodGet, "/api/v2/mobile/properties/search?page=1&pageSize=20", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Items []json.RawMessage `json:"items"`
		Meta  struct {
			Page       int `json:"page"`
			PageSize   int `json:"pageSize"`
			TotalPages int `json:"totalPages"`
			TotalItems int `json:"totalItems"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Items) != 20 {
		t.Errorf("items = %d, want 20", len(resp.Items))
	}
	if resp.Meta.TotalItems != 50 {
		t.Errorf("totalItems = %d, want 50", resp.Meta.TotalItems)
	}
	if resp.Meta.TotalPages != 3 {
		t.Errorf("totalPages = %d, want 3 (50/20 + 1)", resp.Meta.TotalPages)
	}
}

func TestRegister_SameEmailTwice_SecondIs409(t *testing.T) {
	app := newTestApp(t)
	body := `{"firstName":"Noa","lastName":"Levi","email":"new@x.com","password":"p"}`

	first := do(t, app, http.MethodPost, "/api/v2/mobile/auth/register", body)
	if first.Code != http.StatusCreated {
		t.Fatalf("first register status = %d, want 201", first.Code)
	}

	second := do(t, app, http.MethodPost, "/api/v2/mobile/auth/register", body)
	if second.Code != http.StatusConflict {
		t.Fatalf("second register status = %d, want 409", second.Code)
	}
	if !strings.Contains(second.Body.String(), `"error":"conflict"`) {
		t.Errorf("body = %s", second.Body.String())
	}
}

func TestLoginFlow(t *testing.T) {
	app := newTestApp(t)

	ok := do(t, app, http.MethodPost, "/api/v2/mobile/auth/login",
		`{"email":"test@example.com","password":"password123"}`)
	if ok.Code != http.StatusOK {
		t.Errorf("valid login status = %d, want 200", ok.Code)
	}

	badPass := do(t, app, http.MethodPost, "/api/v2/mobile/auth/login",
		`{"email":"test@example.com","password":"wrongpass"}`)
	if badPass.Code != http.StatusUnauthorized {
		t.Errorf("wrong password status = %d, want 401", badPass.Code)
	}

	noUser := do(t, app, http.MethodPost, "/api/v2/mobile/auth/login",
		`{"email":"ghost@x.com","password":"password123"}`)
	if noUser.Code != http.StatusUnauthorized {
		t.Errorf("unknown email status = %d, want 401", noUser.Code)
	}
}

func TestPropertyDetail_KnownAndUnknown(t *testing.T) {
	app := newTestApp(t)

	found := do(t, app, http.MethodGet, "/api/v2/mobile/properties/property-1", "")
	if found.Code != http.StatusOK {
		t.Fatalf("detail status = %d, want 200", found.Code)
	}
	var detail struct {
		Price      int64 `json:"price"`
		Prediction struct {
			Forecast12Months int64 `json:"forecast12Months"`
		} `json:"prediction"`
	}
	if err := json.Unmarshal(found.Body.Bytes(), &detail); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := int64(float64(detail.Price)*1.05 + 0.5)
	if detail.Prediction.Forecast12Months != want {
		t.Errorf("forecast12Months = %d, want %d", detail.Prediction.Forecast12Months, want)
	}

	missing := do(t, app, http.MethodGet, "/api/v2/mobile/properties/property-999", "")
	if missing.Code != http.StatusNotFound {
		t.Fatalf("missing detail status = %d, want 404", missing.Code)
	}
}

func TestSavedEndpoints(t *testing.T) {
	app := newTestApp(t)

	list := do(t, app, http.MethodGet, "/api/v2/mobile/properties/saved", "")
	if list.Code != http.StatusOK {
		t.Fatalf("saved list status = %d, want 200", list.Code)
	}
	var listResp struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	if err := json.Unmarshal(list.Body.Bytes(), &listResp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(listResp.Items) != 5 {
		t.Errorf("saved items = %d, want 5", len(listResp.Items))
	}

	save := do(t, app, http.MethodPost, "/api/v2/mobile/properties/saved",
		`{"propertyId":"property-2"}`)
	if save.Code != http.StatusOK {
		t.Errorf("save status = %d, want 200", save.Code)
	}
	if !strings.Contains(save.Body.String(), `"id":"saved-property-2"`) {
		t.Errorf("save body = %s", save.Body.String())
	}

	del := do(t, app, http.MethodDelete, "/api/v2/mobile/properties/saved/saved-property-2", "")
	if del.Code != http.StatusOK {
		t.Errorf("delete status = %d, want 200", del.Code)
	}
}

func TestUserAndNotificationsAndBilling(t *testing.T) {
	app := newTestApp(t)

	profile := do(t, app, http.MethodGet, "/api/v2/mobile/user/profile", "")
	if profile.Code != http.StatusOK || !strings.Contains(profile.Body.String(), `"user-123"`) {
		t.Errorf("profile status = %d body = %s", profile.Code, profile.Body.String())
	}

	sub := do(t, app, http.MethodGet, "/api/v2/mobile/user/subscription", "")
	if sub.Code != http.StatusOK || !strings.Contains(sub.Body.String(), `"premium"`) {
		t.Errorf("subscription status = %d body = %s", sub.Code, sub.Body.String())
	}

	notifs := do(t, app, http.MethodGet, "/api/v2/mobile/notifications?pageSize=4", "")
	if notifs.Code != http.StatusOK {
		t.Fatalf("notifications status = %d, want 200", notifs.Code)
	}
	var notifResp struct {
		Items []json.RawMessage `json:"items"`
		Meta  struct {
			TotalPages int `json:"totalPages"`
			TotalItems int `json:"totalItems"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(notifs.Body.Bytes(), &notifResp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(notifResp.Items) != 4 {
		t.Errorf("notification items = %d, want 4", len(notifResp.Items))
	}
	if notifResp.Meta.TotalPages != 3 || notifResp.Meta.TotalItems != 25 {
		t.Errorf("meta = %+v, want hardcoded 3/25", notifResp.Meta)
	}

	markRead := do(t, app, http.MethodPut, "/api/v2/mobile/notifications/notif-1/read", "")
	if markRead.Code != http.StatusOK {
		t.Errorf("mark read status = %d, want 200", markRead.Code)
	}

	billing := do(t, app, http.MethodPost, "/api/v2/mobile/billing/ios/verify",
		`{"receiptData":"opaque-blob"}`)
	if billing.Code != http.StatusOK {
		t.Fatalf("billing status = %d, want 200", billing.Code)
	}
	for _, want := range []string{`"success":true`, `"Subscription activated"`} {
		if !strings.Contains(billing.Body.String(), want) {
			t.Errorf("billing body = %s, missing %s", billing.Body.String(), want)
		}
	}
}

func TestRequestIDHeaderSet(t *testing.T) {
	w := do(t, newTestApp(t), http.MethodGet, "/health/ping", "")

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing")
	}
}
