package config

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type SecretsClient struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewSecretsClient(config *Config) *SecretsClient {
	return &SecretsClient{
		BaseURL:    config.Secrets.URL,
		APIKey:     config.Secrets.APIKey,
		HTTPClient: &http.Client{},
	}
}

func (c *SecretsClient) GetSecret(name string) (string, error) {
	url := fmt.Sprintf("%s/v1/secrets/%s", c.BaseURL, name)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("config: error fetching secret %s: %s", name, body)
	}

	var response struct {
		Secret struct {
			Name    string `json:"name"`
			Content string `json:"content"`
		} `json:"secret"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", err
	}

	return response.Secret.Content, nil
}
