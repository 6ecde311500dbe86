package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Respuesta del servicio de inventario para GET /api/books/{id}
type BookInfo struct {
	Success bool     `json:"success"`
	Data    BookData `json:"data"`
}

type BookData struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"author"`
	Genre struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"genre"`
	UserID    string `json:"userId"` // id del vendedor dueño del libro
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// InventoryClient consulta los datos de un libro en el servicio de inventario.
// Cada llamada es un round trip nuevo con timeout acotado; sin reintentos.
type InventoryClient struct {
	baseURL string
	http    *http.Client
}

func NewInventoryClient(baseURL string, timeout time.Duration) *InventoryClient {
	return &InventoryClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *InventoryClient) FetchBook(ctx context.Context, bookID, credential string) (*BookInfo, error) {
	url := fmt.Sprintf("%s/api/books/%s", c.baseURL, bookID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, upstreamErr("failed to fetch book details", err)
	}
	// Se reenvía la credencial del usuario tal cual llegó
	if credential != "" {
		req.Header.Set("Authorization", credential)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, upstreamErr("failed to fetch book details", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, upstreamErr("failed to fetch book details",
			fmt.Errorf("inventory returned status %d", resp.StatusCode))
	}

	var info BookInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, upstreamErr("failed to fetch book details", err)
	}
	return &info, nil
}
