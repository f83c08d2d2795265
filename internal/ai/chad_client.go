package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
)

// ChadClient — клиент ChadGPT. У API собственный конверт
// {is_success, response, error_message}, SDK под него нет,
// поэтому ходим голым http-клиентом.
type ChadClient struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

// NewChadClient — httpClient общий на процесс, соединения
// переиспользуются между вызовами.
func NewChadClient(url, apiKey string, httpClient *http.Client) *ChadClient {
	return &ChadClient{
		url:        url,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

func (c *ChadClient) Generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	// ChadGPT не принимает temperature, параметр остаётся у нас
	// только ради снимка в истории
	reqBody, _ := json.Marshal(map[string]any{
		"message": prompt,
		"api_key": c.apiKey,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		// оборванное тело — проблема транспорта, не формата
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}

	if resp.StatusCode >= 300 {
		log.Printf("[chad] http error status=%d body=%s", resp.StatusCode, string(raw))
		return "", fmt.Errorf("%w: status %d", ErrTransport, resp.StatusCode)
	}

	var out struct {
		IsSuccess    *bool  `json:"is_success"`
		Response     string `json:"response"`
		ErrorMessage string `json:"error_message"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if out.IsSuccess == nil {
		return "", fmt.Errorf("%w: missing is_success", ErrMalformedResponse)
	}

	if !*out.IsSuccess {
		// текст ошибки провайдера пользователю не показываем, только в лог
		log.Printf("[chad] api error: %s", out.ErrorMessage)
		return "", fmt.Errorf("%w: %s", ErrProvider, out.ErrorMessage)
	}

	if out.Response == "" {
		return "", fmt.Errorf("%w: empty response", ErrMalformedResponse)
	}

	return out.Response, nil
}
