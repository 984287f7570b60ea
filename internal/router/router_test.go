package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"clinica-api/internal/adapters/auth/bcrypt"
	"clinica-api/internal/adapters/auth/jwtauth"
	"clinica-api/internal/router"

	"github.com/golang-jwt/jwt/v5"
	xbcrypt "golang.org/x/crypto/bcrypt"
)

const (
	testKey       = "test-signing-key-0123456789abcdef"
	adminEmail    = "admin@clinica.test"
	adminPassword = "AdminPass123"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	tokens, err := jwtauth.NewTokenService(jwtauth.Config{Key: testKey})
	if err != nil {
		t.Fatalf("token service: %v", err)
	}

	h, err := router.NewRouter(context.Background(), router.Options{
		Verifier: tokens,
		Issuer:   tokens,
		Hasher:   bcrypt.NewHasher(xbcrypt.MinCost),
		Admin:    &router.Admin{Email: adminEmail, Password: adminPassword, Name: "Admin"},
	})
	if err != nil {
		t.Fatalf("new router: %v", err)
	}

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_OperationalEndpoints(t *testing.T) {
	ts := newServer(t)

	st, body, _ := doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("health: %d %q", st, body)
	}

	st, body, _ = doReq(t, ts.URL, "GET", "/metrics", "", nil)
	if st != http.StatusOK || !strings.Contains(string(body), "clinica_http_requests_total") {
		t.Fatalf("metrics: %d\n%s", st, body)
	}

	st, body, _ = doReq(t, ts.URL, "GET", "/swagger/doc.json", "", nil)
	if st != http.StatusOK || !strings.Contains(string(body), `"/consultas"`) {
		t.Fatalf("swagger doc: %d", st)
	}
}

func TestHTTP_ProtectedRoutesRequireToken(t *testing.T) {
	ts := newServer(t)

	for _, p := range []string{"/api/usuarios", "/api/medicos", "/api/pacientes", "/api/consultas"} {
		st, body, _ := doReq(t, ts.URL, "GET", p, "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d body=%s", p, st, body)
		}
	}

	st, _, _ := doReq(t, ts.URL, "GET", "/api/medicos", "not-a-jwt", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 with garbage token, got %d", st)
	}
}

func TestHTTP_Login_TokenExpiry(t *testing.T) {
	ts := newServer(t)

	before := time.Now()
	st, body, _ := doReq(t, ts.URL, "POST", "/api/login", "", map[string]any{
		"correo":   "  ADMIN@clinica.test ",
		"password": adminPassword,
	})
	if st != http.StatusOK {
		t.Fatalf("login: %d body=%s", st, body)
	}

	var out struct {
		ID             int64     `json:"id"`
		NombreCompleto string    `json:"nombreCompleto"`
		Correo         string    `json:"correo"`
		Token          string    `json:"token"`
		ExpiresAt      time.Time `json:"expiresAt"`
	}
	mustJSON(t, body, &out)
	if out.Correo != adminEmail || out.NombreCompleto != "Admin" || out.Token == "" {
		t.Fatalf("unexpected login response: %+v", out)
	}
	assertNoPassword(t, body)

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(out.Token, claims, func(*jwt.Token) (any, error) { return []byte(testKey), nil })
	if err != nil {
		t.Fatalf("token does not validate under key: %v", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		t.Fatalf("exp missing: %v", err)
	}
	want := before.Add(60 * time.Minute)
	if exp.Before(want.Add(-2*time.Second)) || exp.After(want.Add(5*time.Second)) {
		t.Fatalf("exp=%v want ~%v", exp.Time, want)
	}
}

func TestHTTP_Login_FailuresAreIdentical(t *testing.T) {
	ts := newServer(t)
	token := login(t, ts.URL, adminEmail, adminPassword)

	createUser(t, ts.URL, token, map[string]any{
		"correo":         "inactivo@clinica.test",
		"password":       "ClaveSegura1",
		"nombreCompleto": "Usuario Inactivo",
		"activo":         false,
	})

	attempts := []map[string]any{
		{"correo": adminEmail, "password": "incorrecta"},
		{"correo": "nadie@clinica.test", "password": adminPassword},
		{"correo": "inactivo@clinica.test", "password": "ClaveSegura1"},
	}

	var first []byte
	for i, a := range attempts {
		st, body, _ := doReq(t, ts.URL, "POST", "/api/login", "", a)
		if st != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected 401, got %d", i, st)
		}
		if i == 0 {
			first = body
			if !strings.Contains(string(body), "Usuario o contraseña incorrectos.") {
				t.Fatalf("unexpected body: %s", body)
			}
			continue
		}
		if !bytes.Equal(first, body) {
			t.Fatalf("attempt %d body differs: %s vs %s", i, body, first)
		}
	}
}

func TestHTTP_Users_NeverExposePassword(t *testing.T) {
	ts := newServer(t)
	token := login(t, ts.URL, adminEmail, adminPassword)

	doctorID := createDoctor(t, ts.URL, token, doctorBody("Ana"))

	st, body, hdr := doReq(t, ts.URL, "POST", "/api/usuarios", token, map[string]any{
		"correo":         "Medico@Clinica.test",
		"password":       "ClaveSegura1",
		"nombreCompleto": "Dra. Ana",
		"idMedico":       doctorID,
	})
	if st != http.StatusCreated {
		t.Fatalf("create user: %d body=%s", st, body)
	}
	assertNoPassword(t, body)

	var created struct {
		ID       int64  `json:"id"`
		Correo   string `json:"correo"`
		IDMedico *int64 `json:"idMedico"`
		Activo   bool   `json:"activo"`
	}
	mustJSON(t, body, &created)
	if created.Correo != "medico@clinica.test" || created.IDMedico == nil || *created.IDMedico != doctorID || !created.Activo {
		t.Fatalf("unexpected user: %+v", created)
	}
	if loc := hdr.Get("Location"); loc != fmt.Sprintf("/api/usuarios/%d", created.ID) {
		t.Fatalf("Location=%q", loc)
	}

	userPath := fmt.Sprintf("/api/usuarios/%d", created.ID)

	st, body, _ = doReq(t, ts.URL, "GET", "/api/usuarios", token, nil)
	if st != http.StatusOK {
		t.Fatalf("list: %d", st)
	}
	assertNoPassword(t, body)

	st, body, _ = doReq(t, ts.URL, "GET", userPath, token, nil)
	if st != http.StatusOK {
		t.Fatalf("get: %d", st)
	}
	assertNoPassword(t, body)

	st, body, _ = doReq(t, ts.URL, "PUT", userPath, token, map[string]any{
		"correo":         "medico@clinica.test",
		"nombreCompleto": "Dra. Ana Ruiz",
		"idMedico":       doctorID,
		"activo":         true,
		"password":       "NuevaClave99",
	})
	if st != http.StatusOK {
		t.Fatalf("update: %d body=%s", st, body)
	}
	assertNoPassword(t, body)

	// la nueva contraseña reemplaza a la anterior
	login(t, ts.URL, "medico@clinica.test", "NuevaClave99")
	st, _, _ = doReq(t, ts.URL, "POST", "/api/login", "", map[string]any{"correo": "medico@clinica.test", "password": "ClaveSegura1"})
	if st != http.StatusUnauthorized {
		t.Fatalf("old password should fail, got %d", st)
	}
}

func TestHTTP_Users_DuplicateEmailAndMissingDoctor(t *testing.T) {
	ts := newServer(t)
	token := login(t, ts.URL, adminEmail, adminPassword)

	st, body, _ := doReq(t, ts.URL, "POST", "/api/usuarios", token, map[string]any{
		"correo":         "ADMIN@clinica.test",
		"password":       "ClaveSegura1",
		"nombreCompleto": "Otro",
	})
	if st != http.StatusConflict {
		t.Fatalf("expected 409 duplicate email, got %d body=%s", st, body)
	}

	st, body, _ = doReq(t, ts.URL, "POST", "/api/usuarios", token, map[string]any{
		"correo":         "x@clinica.test",
		"password":       "ClaveSegura1",
		"nombreCompleto": "X",
		"idMedico":       999,
	})
	if st != http.StatusBadRequest || !strings.Contains(string(body), "El médico especificado no existe.") {
		t.Fatalf("expected 400 missing doctor, got %d body=%s", st, body)
	}
}

func TestHTTP_Validation(t *testing.T) {
	ts := newServer(t)
	token := login(t, ts.URL, adminEmail, adminPassword)

	st, body, _ := doReq(t, ts.URL, "POST", "/api/medicos", token, map[string]any{
		"primerNombre": "   ",
	})
	if st != http.StatusBadRequest || !strings.Contains(string(body), `"message"`) {
		t.Fatalf("expected 400 with message, got %d body=%s", st, body)
	}

	st, _, _ = doReq(t, ts.URL, "GET", "/api/medicos/abc", token, nil)
	if st != http.StatusNotFound {
		t.Fatalf("non-numeric id: expected 404, got %d", st)
	}

	st, body, _ = doReq(t, ts.URL, "GET", "/api/medicos/12345", token, nil)
	if st != http.StatusNotFound || len(body) != 0 {
		t.Fatalf("missing id: expected empty 404, got %d body=%q", st, body)
	}

	st, _, _ = doReq(t, ts.URL, "GET", "/api/consultas?top=diez", token, nil)
	if st != http.StatusBadRequest {
		t.Fatalf("malformed top: expected 400, got %d", st)
	}

	st, _, _ = doReq(t, ts.URL, "GET", "/api/consultas?idMedico=x", token, nil)
	if st != http.StatusBadRequest {
		t.Fatalf("malformed idMedico: expected 400, got %d", st)
	}
}

func TestHTTP_Doctor_RoundTripAndActiveFilter(t *testing.T) {
	ts := newServer(t)
	token := login(t, ts.URL, adminEmail, adminPassword)

	in := doctorBody("Ana")
	in["segundoNombre"] = "María"
	in["apellidoMaterno"] = "López"
	id := createDoctor(t, ts.URL, token, in)

	st, body, _ := doReq(t, ts.URL, "GET", fmt.Sprintf("/api/medicos/%d", id), token, nil)
	if st != http.StatusOK {
		t.Fatalf("get doctor: %d", st)
	}
	var got map[string]any
	mustJSON(t, body, &got)
	for k, v := range in {
		if k == "telefono" {
			if got[k] != float64(v.(int)) {
				t.Fatalf("telefono: got %v want %v", got[k], v)
			}
			continue
		}
		if got[k] != v {
			t.Fatalf("%s: got %v want %v", k, got[k], v)
		}
	}
	if got["nombreCompleto"] != "Ana María Ruiz López" {
		t.Fatalf("nombreCompleto=%v", got["nombreCompleto"])
	}
	if got["activo"] != true {
		t.Fatalf("activo omitted should default to true")
	}

	inactive := doctorBody("Beto")
	inactive["activo"] = false
	createDoctor(t, ts.URL, token, inactive)

	var all, active []map[string]any
	_, body, _ = doReq(t, ts.URL, "GET", "/api/medicos", token, nil)
	mustJSON(t, body, &all)
	_, body, _ = doReq(t, ts.URL, "GET", "/api/medicos?soloActivos=true", token, nil)
	mustJSON(t, body, &active)
	if len(all) != 2 || len(active) != 1 || active[0]["primerNombre"] != "Ana" {
		t.Fatalf("all=%d active=%v", len(all), active)
	}

	upd := doctorBody("Ana")
	upd["especialidad"] = "Pediatría"
	st, _, _ = doReq(t, ts.URL, "PUT", fmt.Sprintf("/api/medicos/%d", id), token, upd)
	if st != http.StatusNoContent {
		t.Fatalf("update doctor: %d", st)
	}
	_, body, _ = doReq(t, ts.URL, "GET", fmt.Sprintf("/api/medicos/%d", id), token, nil)
	mustJSON(t, body, &got)
	if got["especialidad"] != "Pediatría" || got["segundoNombre"] != nil {
		t.Fatalf("update should replace all fields: %v", got)
	}

	st, _, _ = doReq(t, ts.URL, "PUT", "/api/medicos/999", token, upd)
	if st != http.StatusNotFound {
		t.Fatalf("update missing doctor: expected 404, got %d", st)
	}
}

func TestHTTP_Consultations_RequireExistingReferences(t *testing.T) {
	ts := newServer(t)
	token := login(t, ts.URL, adminEmail, adminPassword)

	doctorID := createDoctor(t, ts.URL, token, doctorBody("Ana"))
	patientID := createPatient(t, ts.URL, token, "Luis")

	st, body, _ := doReq(t, ts.URL, "POST", "/api/consultas", token, map[string]any{
		"idMedico": 999, "idPaciente": patientID, "sintomas": "fiebre",
	})
	if st != http.StatusBadRequest || !strings.Contains(string(body), "El médico especificado no existe.") {
		t.Fatalf("missing doctor: %d body=%s", st, body)
	}

	st, body, _ = doReq(t, ts.URL, "POST", "/api/consultas", token, map[string]any{
		"idMedico": doctorID, "idPaciente": 999, "sintomas": "fiebre",
	})
	if st != http.StatusBadRequest || !strings.Contains(string(body), "El paciente especificado no existe.") {
		t.Fatalf("missing patient: %d body=%s", st, body)
	}

	var list []map[string]any
	_, body, _ = doReq(t, ts.URL, "GET", "/api/consultas", token, nil)
	mustJSON(t, body, &list)
	if len(list) != 0 {
		t.Fatalf("nothing should be persisted, got %v", list)
	}
}

func TestHTTP_Consultations_ListFilters(t *testing.T) {
	ts := newServer(t)
	token := login(t, ts.URL, adminEmail, adminPassword)

	doctorA := createDoctor(t, ts.URL, token, doctorBody("Ana"))
	doctorB := createDoctor(t, ts.URL, token, doctorBody("Beto"))
	patient := createPatient(t, ts.URL, token, "Luis")

	first := createConsultation(t, ts.URL, token, doctorA, patient)
	createConsultation(t, ts.URL, token, doctorB, patient)
	last := createConsultation(t, ts.URL, token, doctorA, patient)

	var list []map[string]any
	_, body, _ := doReq(t, ts.URL, "GET", "/api/consultas", token, nil)
	mustJSON(t, body, &list)
	if len(list) != 3 || list[0]["id"] != float64(last) || list[2]["id"] != float64(first) {
		t.Fatalf("expected id desc: %v", list)
	}
	if list[0]["medicoNombre"] != "Ana Ruiz" || list[0]["pacienteNombre"] != "Luis Paz" {
		t.Fatalf("names: %v", list[0])
	}

	_, body, _ = doReq(t, ts.URL, "GET", fmt.Sprintf("/api/consultas?idMedico=%d&top=1", doctorA), token, nil)
	mustJSON(t, body, &list)
	if len(list) != 1 || list[0]["id"] != float64(last) {
		t.Fatalf("idMedico+top: %v", list)
	}

	st, body, _ := doReq(t, ts.URL, "GET", "/api/consultas?top=0", token, nil)
	mustJSON(t, body, &list)
	if st != http.StatusOK || len(list) != 0 {
		t.Fatalf("top=0: expected 200 with empty list, got %d %v", st, list)
	}

	today := time.Now().UTC().Format("2006-01-02")
	_, body, _ = doReq(t, ts.URL, "GET", "/api/consultas?fecha="+today, token, nil)
	mustJSON(t, body, &list)
	if len(list) != 3 {
		t.Fatalf("fecha today: expected 3, got %d", len(list))
	}

	_, body, _ = doReq(t, ts.URL, "GET", "/api/consultas?fecha=2000-01-01", token, nil)
	mustJSON(t, body, &list)
	if len(list) != 0 {
		t.Fatalf("fecha past: expected 0, got %d", len(list))
	}

	// fecha mal formada no filtra
	_, body, _ = doReq(t, ts.URL, "GET", "/api/consultas?fecha=01/05/2024", token, nil)
	mustJSON(t, body, &list)
	if len(list) != 3 {
		t.Fatalf("malformed fecha: expected 3, got %d", len(list))
	}
}

func TestHTTP_DoctorDelete_RestrictAndCascade(t *testing.T) {
	ts := newServer(t)
	token := login(t, ts.URL, adminEmail, adminPassword)

	withUser := createDoctor(t, ts.URL, token, doctorBody("Ana"))
	onlyConsultations := createDoctor(t, ts.URL, token, doctorBody("Beto"))
	patient := createPatient(t, ts.URL, token, "Luis")

	createUser(t, ts.URL, token, map[string]any{
		"correo":         "ana@clinica.test",
		"password":       "ClaveSegura1",
		"nombreCompleto": "Ana",
		"idMedico":       withUser,
	})
	consultation := createConsultation(t, ts.URL, token, onlyConsultations, patient)

	st, body, _ := doReq(t, ts.URL, "DELETE", fmt.Sprintf("/api/medicos/%d", withUser), token, nil)
	if st != http.StatusConflict || !strings.Contains(string(body), `"message"`) {
		t.Fatalf("expected 409 restrict, got %d body=%s", st, body)
	}

	st, _, _ = doReq(t, ts.URL, "DELETE", fmt.Sprintf("/api/medicos/%d", onlyConsultations), token, nil)
	if st != http.StatusNoContent {
		t.Fatalf("expected 204 cascade delete, got %d", st)
	}
	st, _, _ = doReq(t, ts.URL, "GET", fmt.Sprintf("/api/consultas/%d", consultation), token, nil)
	if st != http.StatusNotFound {
		t.Fatalf("consultation should be gone, got %d", st)
	}

	st, _, _ = doReq(t, ts.URL, "DELETE", fmt.Sprintf("/api/medicos/%d", onlyConsultations), token, nil)
	if st != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", st)
	}
}

func TestHTTP_ExpiredToken(t *testing.T) {
	ts := newServer(t)

	past := time.Now().Add(-2 * time.Hour)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "1",
		IssuedAt:  jwt.NewNumericDate(past),
		NotBefore: jwt.NewNumericDate(past),
		ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
	})
	signed, err := tok.SignedString([]byte(testKey))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	st, body, hdr := doReq(t, ts.URL, "GET", "/api/medicos", signed, nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", st)
	}
	if !strings.Contains(hdr.Get("WWW-Authenticate"), `error_description="token expired"`) {
		t.Fatalf("WWW-Authenticate=%q", hdr.Get("WWW-Authenticate"))
	}
	if !strings.Contains(string(body), "La sesión ha expirado.") {
		t.Fatalf("body=%s", body)
	}
}

func TestHTTP_Users_PasswordLimits(t *testing.T) {
	ts := newServer(t)
	token := login(t, ts.URL, adminEmail, adminPassword)

	st, body, _ := doReq(t, ts.URL, "POST", "/api/usuarios", token, map[string]any{
		"correo":         "largo@clinica.test",
		"password":       strings.Repeat("a", 73),
		"nombreCompleto": "Largo",
	})
	if st != http.StatusBadRequest || !strings.Contains(string(body), `"message"`) {
		t.Fatalf("73 ascii chars: expected 400, got %d body=%s", st, body)
	}

	// 40 caracteres pasan la validación de largo pero son 80 bytes
	st, body, _ = doReq(t, ts.URL, "POST", "/api/usuarios", token, map[string]any{
		"correo":         "largo@clinica.test",
		"password":       strings.Repeat("ñ", 40),
		"nombreCompleto": "Largo",
	})
	if st != http.StatusBadRequest || !strings.Contains(string(body), "72 bytes") {
		t.Fatalf("80 bytes: expected 400, got %d body=%s", st, body)
	}

	id := createUser(t, ts.URL, token, map[string]any{
		"correo":         "largo@clinica.test",
		"password":       strings.Repeat("a", 72),
		"nombreCompleto": "Largo",
	})
	userPath := fmt.Sprintf("/api/usuarios/%d", id)

	st, body, _ = doReq(t, ts.URL, "PUT", userPath, token, map[string]any{
		"correo":         "largo@clinica.test",
		"nombreCompleto": "Largo",
		"password":       strings.Repeat("ñ", 40),
	})
	if st != http.StatusBadRequest {
		t.Fatalf("update 80 bytes: expected 400, got %d body=%s", st, body)
	}

	// password vacío conserva la contraseña actual
	st, body, _ = doReq(t, ts.URL, "PUT", userPath, token, map[string]any{
		"correo":         "largo@clinica.test",
		"nombreCompleto": "Largo Dos",
		"password":       "",
	})
	if st != http.StatusOK {
		t.Fatalf("update empty password: expected 200, got %d body=%s", st, body)
	}
	login(t, ts.URL, "largo@clinica.test", strings.Repeat("a", 72))
}

func TestHTTP_OverflowingIDIsNotFound(t *testing.T) {
	ts := newServer(t)
	token := login(t, ts.URL, adminEmail, adminPassword)

	const huge = "99999999999999999999"
	for _, path := range []string{"/api/usuarios/", "/api/medicos/", "/api/pacientes/", "/api/consultas/"} {
		st, body, _ := doReq(t, ts.URL, "GET", path+huge, token, nil)
		if st != http.StatusNotFound || len(body) != 0 {
			t.Fatalf("GET %s%s: expected empty 404, got %d body=%q", path, huge, st, body)
		}
		st, _, _ = doReq(t, ts.URL, "DELETE", path+huge, token, nil)
		if st != http.StatusNotFound {
			t.Fatalf("DELETE %s%s: expected 404, got %d", path, huge, st)
		}
	}
}

func TestHTTP_Patient_RoundTripActiveFilterAndCascade(t *testing.T) {
	ts := newServer(t)
	token := login(t, ts.URL, adminEmail, adminPassword)

	in := map[string]any{
		"primerNombre":    "Luis",
		"segundoNombre":   "Ángel",
		"apellidoPaterno": "Paz",
		"apellidoMaterno": "Soto",
		"telefono":        "555-0101",
	}
	id := createResource(t, ts.URL, token, "/api/pacientes", in)
	patientPath := fmt.Sprintf("/api/pacientes/%d", id)

	st, body, _ := doReq(t, ts.URL, "GET", patientPath, token, nil)
	if st != http.StatusOK {
		t.Fatalf("get patient: %d", st)
	}
	var got map[string]any
	mustJSON(t, body, &got)
	for k, v := range in {
		if got[k] != v {
			t.Fatalf("%s: got %v want %v", k, got[k], v)
		}
	}
	if got["nombreCompleto"] != "Luis Ángel Paz Soto" || got["activo"] != true {
		t.Fatalf("unexpected patient: %v", got)
	}

	inactive := createResource(t, ts.URL, token, "/api/pacientes", map[string]any{
		"primerNombre": "Eva", "apellidoPaterno": "Mora", "telefono": "555-0202", "activo": false,
	})

	var all, active []map[string]any
	_, body, _ = doReq(t, ts.URL, "GET", "/api/pacientes", token, nil)
	mustJSON(t, body, &all)
	_, body, _ = doReq(t, ts.URL, "GET", "/api/pacientes?soloActivos=true", token, nil)
	mustJSON(t, body, &active)
	if len(all) != 2 || len(active) != 1 || active[0]["id"] != float64(id) {
		t.Fatalf("all=%v active=%v", all, active)
	}

	st, _, _ = doReq(t, ts.URL, "PUT", patientPath, token, map[string]any{
		"primerNombre": "Luis", "apellidoPaterno": "Paz", "telefono": "555-9999",
	})
	if st != http.StatusNoContent {
		t.Fatalf("update patient: %d", st)
	}
	_, body, _ = doReq(t, ts.URL, "GET", patientPath, token, nil)
	got = nil
	mustJSON(t, body, &got)
	if got["telefono"] != "555-9999" || got["segundoNombre"] != nil || got["apellidoMaterno"] != nil || got["nombreCompleto"] != "Luis Paz" {
		t.Fatalf("update should replace all fields: %v", got)
	}

	doctor := createDoctor(t, ts.URL, token, doctorBody("Ana"))
	mine := createConsultation(t, ts.URL, token, doctor, id)
	other := createConsultation(t, ts.URL, token, doctor, inactive)

	st, _, _ = doReq(t, ts.URL, "DELETE", patientPath, token, nil)
	if st != http.StatusNoContent {
		t.Fatalf("delete patient: %d", st)
	}
	st, _, _ = doReq(t, ts.URL, "GET", patientPath, token, nil)
	if st != http.StatusNotFound {
		t.Fatalf("deleted patient: expected 404, got %d", st)
	}
	st, _, _ = doReq(t, ts.URL, "GET", fmt.Sprintf("/api/consultas/%d", mine), token, nil)
	if st != http.StatusNotFound {
		t.Fatalf("consultation of deleted patient should be gone, got %d", st)
	}
	st, _, _ = doReq(t, ts.URL, "GET", fmt.Sprintf("/api/consultas/%d", other), token, nil)
	if st != http.StatusOK {
		t.Fatalf("other consultation must survive, got %d", st)
	}

	st, _, _ = doReq(t, ts.URL, "DELETE", patientPath, token, nil)
	if st != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", st)
	}
}

func TestHTTP_Consultation_UpdateAndDelete(t *testing.T) {
	ts := newServer(t)
	token := login(t, ts.URL, adminEmail, adminPassword)

	doctorA := createDoctor(t, ts.URL, token, doctorBody("Ana"))
	doctorB := createDoctor(t, ts.URL, token, doctorBody("Beto"))
	patient := createPatient(t, ts.URL, token, "Luis")
	id := createConsultation(t, ts.URL, token, doctorA, patient)
	path := fmt.Sprintf("/api/consultas/%d", id)

	var before map[string]any
	_, body, _ := doReq(t, ts.URL, "GET", path, token, nil)
	mustJSON(t, body, &before)

	st, body, _ := doReq(t, ts.URL, "PUT", path, token, map[string]any{
		"idMedico":        doctorB,
		"idPaciente":      patient,
		"sintomas":        "fiebre",
		"recomendaciones": "reposo",
		"diagnostico":     "gripe",
	})
	if st != http.StatusNoContent || len(body) != 0 {
		t.Fatalf("update consultation: expected empty 204, got %d body=%s", st, body)
	}

	var got map[string]any
	_, body, _ = doReq(t, ts.URL, "GET", path, token, nil)
	mustJSON(t, body, &got)
	if got["idMedico"] != float64(doctorB) || got["medicoNombre"] != "Beto Ruiz" || got["sintomas"] != "fiebre" ||
		got["recomendaciones"] != "reposo" || got["diagnostico"] != "gripe" {
		t.Fatalf("fields not replaced: %v", got)
	}
	if got["fechaCreacion"] != before["fechaCreacion"] {
		t.Fatalf("fechaCreacion changed: %v -> %v", before["fechaCreacion"], got["fechaCreacion"])
	}

	st, body, _ = doReq(t, ts.URL, "PUT", path, token, map[string]any{
		"idMedico": 999, "idPaciente": patient, "sintomas": "x",
	})
	if st != http.StatusBadRequest || !strings.Contains(string(body), "El médico especificado no existe.") {
		t.Fatalf("update to missing doctor: %d body=%s", st, body)
	}
	_, body, _ = doReq(t, ts.URL, "GET", path, token, nil)
	got = nil
	mustJSON(t, body, &got)
	if got["idMedico"] != float64(doctorB) {
		t.Fatalf("failed update must not persist: %v", got)
	}

	st, _, _ = doReq(t, ts.URL, "PUT", "/api/consultas/999", token, map[string]any{
		"idMedico": doctorA, "idPaciente": patient, "sintomas": "x",
	})
	if st != http.StatusNotFound {
		t.Fatalf("update missing consultation: expected 404, got %d", st)
	}

	st, _, _ = doReq(t, ts.URL, "DELETE", path, token, nil)
	if st != http.StatusNoContent {
		t.Fatalf("delete consultation: %d", st)
	}
	st, _, _ = doReq(t, ts.URL, "GET", path, token, nil)
	if st != http.StatusNotFound {
		t.Fatalf("deleted consultation: expected 404, got %d", st)
	}
}

// helpers

func doctorBody(first string) map[string]any {
	return map[string]any{
		"primerNombre":    first,
		"apellidoPaterno": "Ruiz",
		"cedula":          "CED-" + first,
		"telefono":        5512345678,
		"especialidad":    "General",
		"email":           strings.ToLower(first) + "@clinica.test",
	}
}

func createDoctor(t *testing.T, baseURL, token string, body map[string]any) int64 {
	t.Helper()
	return createResource(t, baseURL, token, "/api/medicos", body)
}

func createPatient(t *testing.T, baseURL, token, first string) int64 {
	t.Helper()
	return createResource(t, baseURL, token, "/api/pacientes", map[string]any{
		"primerNombre":    first,
		"apellidoPaterno": "Paz",
		"telefono":        "555-0101",
	})
}

func createConsultation(t *testing.T, baseURL, token string, doctorID, patientID int64) int64 {
	t.Helper()
	return createResource(t, baseURL, token, "/api/consultas", map[string]any{
		"idMedico":   doctorID,
		"idPaciente": patientID,
		"sintomas":   "dolor de cabeza",
	})
}

func createUser(t *testing.T, baseURL, token string, body map[string]any) int64 {
	t.Helper()
	return createResource(t, baseURL, token, "/api/usuarios", body)
}

func createResource(t *testing.T, baseURL, token, path string, body map[string]any) int64 {
	t.Helper()

	st, respBody, hdr := doReq(t, baseURL, "POST", path, token, body)
	if st != http.StatusCreated {
		t.Fatalf("POST %s: expected 201, got %d body=%s", path, st, respBody)
	}

	var out struct {
		ID int64 `json:"id"`
	}
	mustJSON(t, respBody, &out)
	if out.ID <= 0 {
		t.Fatalf("POST %s: missing id in %s", path, respBody)
	}
	if want := fmt.Sprintf("%s/%d", path, out.ID); hdr.Get("Location") != want {
		t.Fatalf("POST %s: Location=%q want %q", path, hdr.Get("Location"), want)
	}
	return out.ID
}

func login(t *testing.T, baseURL, email, password string) string {
	t.Helper()

	st, body, _ := doReq(t, baseURL, "POST", "/api/login", "", map[string]any{
		"correo":   email,
		"password": password,
	})
	if st != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d body=%s", email, st, body)
	}

	var out struct {
		Token string `json:"token"`
	}
	mustJSON(t, body, &out)
	return out.Token
}

func assertNoPassword(t *testing.T, body []byte) {
	t.Helper()
	lower := strings.ToLower(string(body))
	if strings.Contains(lower, "password") || strings.Contains(lower, "$2a$") {
		t.Fatalf("response exposes password data: %s", body)
	}
}

func mustJSON(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("decode json: %v body=%s", err, body)
	}
}

func doReq(t *testing.T, baseURL, method, path, token string, body any) (int, []byte, http.Header) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rd)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, b, res.Header
}
