package network

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// NetworkController is a thin JSON HTTP client shared by the external
// integrations. BaseUrl is prefixed to every path; the zero Client gets a
// default timeout so no call can hang past it.
type NetworkController struct {
	BaseUrl string
	Client  *http.Client
}

func (network *NetworkController) preRequest() {
	if network.Client == nil {
		network.Client = &http.Client{Timeout: 30 * time.Second}
	}
}

func (network *NetworkController) Get(ctx context.Context, path string, headers *map[string]string) (*[]byte, *int, error) {
	return network.do(ctx, http.MethodGet, path, headers, nil)
}

func (network *NetworkController) Post(ctx context.Context, path string, headers *map[string]string, body any) (*[]byte, *int, error) {
	return network.do(ctx, http.MethodPost, path, headers, body)
}

func (network *NetworkController) do(ctx context.Context, method string, path string, headers *map[string]string, body any) (*[]byte, *int, error) {
	network.preRequest()
	if ctx == nil {
		ctx = context.Background()
	}

	var payload io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, nil, err
		}
		payload = bytes.NewBuffer(jsonBody)
	}

	request, err := http.NewRequestWithContext(ctx, method, network.BaseUrl+path, payload)
	if err != nil {
		return nil, nil, err
	}
	request.Header.Set("Content-Type", "application/json")
	if headers != nil {
		for key, value := range *headers {
			request.Header.Set(key, value)
		}
	}

	response, err := network.Client.Do(request)
	if err != nil {
		return nil, nil, err
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, nil, err
	}
	return &responseBody, &response.StatusCode, nil
}
