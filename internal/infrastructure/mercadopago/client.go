package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/athletica/gym-api/internal/application/pagos"
	"github.com/athletica/gym-api/pkg/config"
)

const (
	tokenURL      = "https://api.mercadopago.com/oauth/token"
	preferenceURL = "https://api.mercadopago.com/checkout/preferences"
)

var _ pagos.CheckoutClient = (*Client)(nil)

// Client implementa el puerto CheckoutClient contra el API REST de MercadoPago.
// Usa net/http de la stdlib; no requiere librerías de terceros.
// El access token (client_credentials) se cachea hasta su expiración.
type Client struct {
	httpClient *http.Client
	cfg        config.MercadoPagoConfig

	mu       sync.Mutex
	token    string
	tokenExp time.Time
}

// NewClient construye el cliente. Devuelve nil si faltan credenciales,
// lo que deja el checkout online deshabilitado sin afectar al resto del API.
func NewClient(cfg config.MercadoPagoConfig) *Client {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cfg:        cfg,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"` // segundos
}

type preferenceItem struct {
	Title     string          `json:"title"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type preferenceRequest struct {
	Items    []preferenceItem `json:"items"`
	BackURLs struct {
		Success string `json:"success,omitempty"`
		Failure string `json:"failure,omitempty"`
		Pending string `json:"pending,omitempty"`
	} `json:"back_urls"`
}

type preferenceResponse struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

// CreatePreference crea una preferencia de pago y devuelve la URL de checkout (init_point).
func (c *Client) CreatePreference(ctx context.Context, titulo string, monto decimal.Decimal) (string, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return "", err
	}

	var pref preferenceRequest
	pref.Items = []preferenceItem{{Title: titulo, Quantity: 1, UnitPrice: monto}}
	pref.BackURLs.Success = c.cfg.SuccessURL
	pref.BackURLs.Failure = c.cfg.FailureURL
	pref.BackURLs.Pending = c.cfg.PendingURL

	body, err := json.Marshal(pref)
	if err != nil {
		return "", fmt.Errorf("marshal preference: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, preferenceURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build preference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("crear preferencia: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("leer respuesta de preferencia: %w", err)
	}
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("mercadopago respondió %d: %s", resp.StatusCode, string(raw))
	}

	var out preferenceResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decodificar preferencia: %w", err)
	}
	if out.InitPoint == "" {
		return "", fmt.Errorf("mercadopago no devolvió init_point")
	}
	return out.InitPoint, nil
}

// accessToken devuelve el token cacheado o pide uno nuevo (client_credentials).
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExp) {
		return c.token, nil
	}

	payload := map[string]string{
		"grant_type":    "client_credentials",
		"client_id":     c.cfg.ClientID,
		"client_secret": c.cfg.ClientSecret,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("obtener access token: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("leer respuesta de token: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("oauth respondió %d: %s", resp.StatusCode, string(raw))
	}

	var tok tokenResponse
	if err := json.Unmarshal(raw, &tok); err != nil {
		return "", fmt.Errorf("decodificar token: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("oauth no devolvió access_token")
	}

	c.token = tok.AccessToken
	// Renovar un minuto antes del vencimiento real.
	c.tokenExp = time.Now().Add(time.Duration(tok.ExpiresIn)*time.Second - time.Minute)
	return c.token, nil
}
