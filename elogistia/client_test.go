package elogistia

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewClient(Config{APIKey: "test-key", BaseURL: server.URL}), server
}

func TestGetWilayasCachesResult(t *testing.T) {
	calls := 0
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/getWilayas/", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Write([]byte(`{"body":[{"WilayaID":"16","WilayaLabel":"Alger","Home":"500","Stopdesk":"300"}]}`))
	}))
	defer server.Close()

	first := client.GetWilayas()
	second := client.GetWilayas()

	require.Len(t, first, 1)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls, "second call is served from cache")
}

func TestGetWilayasFailureIsEmptyAndNotCached(t *testing.T) {
	fail := true
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[{"WilayaID":"31","WilayaLabel":"Oran","Home":"600","Stopdesk":"400"}]`))
	}))
	defer server.Close()

	assert.Empty(t, client.GetWilayas())

	fail = false
	wilayas := client.GetWilayas()
	require.Len(t, wilayas, 1, "a failed fetch must not poison the cache")
	assert.Equal(t, "Oran", wilayas[0].WilayaLabel)
}

func TestFindWilaya(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"WilayaID":"16","WilayaLabel":"Alger","Home":"500","Stopdesk":"300"},{"WilayaID":"31","WilayaLabel":"Oran","Home":"600","Stopdesk":"400"}]`))
	}))
	defer server.Close()

	wilaya := client.FindWilaya("31")
	require.NotNil(t, wilaya)
	assert.Equal(t, "Oran", wilaya.WilayaLabel)

	assert.Nil(t, client.FindWilaya("99"))
}

func TestGetMunicipalitiesEmptyIDShortCircuits(t *testing.T) {
	requested := false
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer server.Close()

	assert.Empty(t, client.GetMunicipalities(""))
	assert.False(t, requested, "no request expected for an empty wilaya id")
}

func TestGetMunicipalities(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getMunicipalities/", r.URL.Path)
		assert.Equal(t, "16", r.URL.Query().Get("wilaya"))
		w.Write([]byte(`{"data":[{"Id":"1601","Name":"Bab El Oued","Wilaya":"16"}]}`))
	}))
	defer server.Close()

	municipalities := client.GetMunicipalities("16")
	require.Len(t, municipalities, 1)
	assert.Equal(t, "Bab El Oued", municipalities[0].Name)
}

func TestCreateOrderSuccess(t *testing.T) {
	var query map[string][]string
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/insertCommande/", r.URL.Path)
		query = r.URL.Query()
		w.Write([]byte(`{"trackingNumber":"TRK-123"}`))
	}))
	defer server.Close()

	result := client.CreateOrder(OrderRequest{
		CustomerName:  "Amine Benali",
		CustomerPhone: "0550123456",
		WilayaID:      "16",
		Municipality:  "Bab El Oued",
		DeliveryType:  "STOPDESK",
		ShippingCost:  300,
		OrderNumber:   "DRN-1-ABC",
		Products: []OrderProduct{
			{Name: "Boîte pâtissière (x2)", Price: 300},
			{Name: "Caissettes (x1)", Price: 100},
		},
	})

	require.True(t, result.Success)
	assert.Equal(t, "TRK-123", result.TrackingNumber)

	assert.Equal(t, "Amine", query["firstname"][0])
	assert.Equal(t, "Benali", query["name"][0])
	assert.Equal(t, "2", query["stop_desk"][0])
	assert.Equal(t, "Boîte pâtissière (x2),Caissettes (x1)", query["product"][0])
	assert.Equal(t, "300,100", query["price"][0])
	assert.Equal(t, "DRN-1-ABC", query["IdCommande"][0])
}

func TestCreateOrderWithoutTrackingIsFailure(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"refused"}`))
	}))
	defer server.Close()

	result := client.CreateOrder(OrderRequest{CustomerName: "Karim", OrderNumber: "DRN-2-DEF"})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "no tracking number")
}

func TestCreateOrderTransportFailure(t *testing.T) {
	client := NewClient(Config{APIKey: "test-key", BaseURL: "http://127.0.0.1:1"})

	result := client.CreateOrder(OrderRequest{CustomerName: "Karim", OrderNumber: "DRN-3-GHI"})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "failed to reach carrier")
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("ELOGISTIA_API_KEY", "")
	_, err := ConfigFromEnv()
	assert.Error(t, err)

	t.Setenv("ELOGISTIA_API_KEY", "k")
	t.Setenv("ELOGISTIA_BASE_URL", "")
	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, defaultBaseURL, cfg.BaseURL)
}
