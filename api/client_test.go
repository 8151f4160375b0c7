package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emstack/go-employee-console/api"
	"github.com/emstack/go-employee-console/hr"
	"github.com/emstack/go-employee-console/token"
	"github.com/emstack/go-employee-console/token/storefakes"
)

func authedClient(t *testing.T, backend *httptest.Server) *api.Client {
	t.Helper()
	store := storefakes.NewFakeStore()
	require.NoError(t, store.Save(token.Pair{Access: "access-token", Refresh: "r"}))
	return api.New(backend.URL, api.WithTokenStore(store))
}

func TestBearerAndRequestIDHeaders(t *testing.T) {
	var gotAuth, gotRequestID string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		_ = json.NewEncoder(w).Encode([]hr.Employee{})
	}))
	t.Cleanup(backend.Close)

	_, err := authedClient(t, backend).ListEmployees(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer access-token", gotAuth)
	require.NotEmpty(t, gotRequestID)
}

func TestNoBearerWhenSignedOut(t *testing.T) {
	var gotAuth string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]hr.Company{})
	}))
	t.Cleanup(backend.Close)

	client := api.New(backend.URL, api.WithTokenStore(storefakes.NewFakeStore()))
	_, err := client.ListCompanies(context.Background())
	require.NoError(t, err)
	require.Empty(t, gotAuth)
}

func TestErrorDetailParsing(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Not found."})
	}))
	t.Cleanup(backend.Close)

	_, err := authedClient(t, backend).GetEmployee(context.Background(), 99)
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.Equal(t, "Not found.", apiErr.Detail)
}

func TestErrorWithoutJSONBody(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	t.Cleanup(backend.Close)

	_, err := authedClient(t, backend).ListDepartments(context.Background())

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Empty(t, apiErr.Detail)
}

func TestEmployeeEndpoints(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /employees/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]hr.Employee{{ID: 1, FirstName: "Jane", LastName: "Doe", Status: hr.StatusHired}})
	})
	mux.HandleFunc("POST /employees/", func(w http.ResponseWriter, r *http.Request) {
		var e hr.Employee
		require.NoError(t, json.NewDecoder(r.Body).Decode(&e))
		e.ID = 2
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(e)
	})
	mux.HandleFunc("PATCH /employees/2/status/", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Status hr.EmployeeStatus `json:"status"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_ = json.NewEncoder(w).Encode(hr.Employee{ID: 2, Status: body.Status})
	})
	mux.HandleFunc("DELETE /employees/2/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	backend := httptest.NewServer(mux)
	t.Cleanup(backend.Close)

	client := authedClient(t, backend)
	ctx := context.Background()

	employees, err := client.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	require.Equal(t, "Jane Doe", employees[0].FullName())

	created, err := client.CreateEmployee(ctx, hr.Employee{FirstName: "John", LastName: "Smith", Email: "john@example.com"})
	require.NoError(t, err)
	require.Equal(t, int64(2), created.ID)

	updated, err := client.UpdateEmployeeStatus(ctx, 2, hr.StatusHired)
	require.NoError(t, err)
	require.Equal(t, hr.StatusHired, updated.Status)

	require.NoError(t, client.DeleteEmployee(ctx, 2))
}

func TestDepartmentCompanyFilter(t *testing.T) {
	var gotQuery string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]hr.Department{{ID: 4, Name: "Engineering", CompanyID: 9}})
	}))
	t.Cleanup(backend.Close)

	departments, err := authedClient(t, backend).ListDepartmentsByCompany(context.Background(), 9)
	require.NoError(t, err)
	require.Equal(t, "company=9", gotQuery)
	require.Len(t, departments, 1)
	require.Equal(t, int64(9), departments[0].CompanyID)
}
