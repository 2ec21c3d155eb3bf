package sdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDecodesDetailAndMessageErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantKind   ErrorKind
		wantDetail string
	}{
		{"detail field", http.StatusForbidden, `{"detail":"blocked"}`, ErrKindForbidden, "blocked"},
		{"message field", http.StatusNotFound, `{"message":"no existe"}`, ErrKindUnknown, "no existe"},
		{"unauthorized", http.StatusUnauthorized, `{"detail":"Invalid token."}`, ErrKindInvalidCredentials, "Invalid token."},
		{"non-json body", http.StatusBadGateway, `<html>boom</html>`, ErrKindUnknown, "502 Bad Gateway"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL)
			err := client.Health(context.Background())
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantKind, apiErr.Kind)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantDetail, apiErr.Detail)
		})
	}
}

func TestClientUnreachableServer(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")
	err := client.Health(context.Background())
	assert.True(t, IsUnavailable(err))
}

func TestClientSetsRequestHeaders(t *testing.T) {
	var gotAccept, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.ListUsers(context.Background(), ListUsersOptions{})
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotAccept)
	assert.NotEmpty(t, gotRequestID)
}

func TestNewClientDoesNotMutateSuppliedHTTPClient(t *testing.T) {
	supplied := &http.Client{Timeout: 3 * time.Second}

	client := NewClient("http://127.0.0.1:1",
		WithHTTPClient(supplied),
		WithTimeout(9*time.Second),
		WithCredentialSource(StaticCredential("tok")),
	)

	assert.Equal(t, 3*time.Second, supplied.Timeout)
	assert.Nil(t, supplied.Transport)

	assert.Equal(t, 9*time.Second, client.httpClient.Timeout)
	assert.IsType(t, &Transport{}, client.httpClient.Transport)
}

func TestLoginResponseWithoutToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"email": "a@b.com"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Login(context.Background(), LoginInput{Email: "a@b.com", Password: "pw"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no token")
}

func TestLoginValidatesInput(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")

	_, err := client.Login(context.Background(), LoginInput{Email: "", Password: "pw"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")

	_, err = client.Login(context.Background(), LoginInput{Email: "not-an-email", Password: "pw"})
	require.Error(t, err)

	_, err = client.Login(context.Background(), LoginInput{Email: "a@b.com", Password: ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password")
}

func TestListUsers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/usuarios/", r.URL.Path)
		require.Equal(t, "docente", r.URL.Query().Get("rol"))
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "nombre": "Ana", "apellido": "Diaz", "email": "ana@x.co", "rol": "Docente", "is_active": true},
			{"id": 2, "nombre": "Luis", "apellido": "Rojas", "email": "luis@x.co", "rol": "Docente", "is_active": false},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	users, err := client.ListUsers(context.Background(), ListUsersOptions{Role: "docente"})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Ana", users[0].GivenName)
	assert.False(t, users[1].IsActive)
}

func TestAttendanceByDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/asistencias/", r.URL.Path)
		require.Equal(t, "2026-03-02", r.URL.Query().Get("fecha"))
		require.Equal(t, "5", r.URL.Query().Get("grupo"))
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 9, "estudiante": 3, "fecha": "2026-03-02", "estado": "T", "registrada_por": 1},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	records, err := client.AttendanceByDate(context.Background(), "2026-03-02", 5)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, AttendanceLate, records[0].Status)
	assert.Equal(t, "Tarde", AttendanceLabel(records[0].Status))
}

func TestRecordAttendanceValidatesStatus(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")
	_, err := client.RecordAttendance(context.Background(), RecordAttendanceInput{
		StudentID: 1, Date: "2026-03-02", Status: "X",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "estado")
}

func TestPerformanceReport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/reportes/rendimiento/", r.URL.Path)
		require.Equal(t, "2", r.URL.Query().Get("periodo"))
		w.Write([]byte(`{"promedio": 8.4, "grupos": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	doc, err := client.PerformanceReport(context.Background(), ReportFilters{PeriodID: 2})
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(doc, &decoded))
	assert.Contains(t, decoded, "promedio")
}
