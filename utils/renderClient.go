package utils

import (
	"fmt"
	"internhub/config"
	"time"

	"github.com/go-resty/resty/v2"
)

// RenderDocument posts a document payload to the external PDF renderer and
// returns the PDF bytes. Documents are rendered on demand; nothing is cached
// locally.
func RenderDocument(payload interface{}) ([]byte, error) {
	client := resty.New().SetTimeout(30 * time.Second)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Api-Key", config.AppConfig.RendererApiKey).
		SetBody(payload).
		Post(config.AppConfig.RendererApiURL + "/render")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("renderer returned status %d", resp.StatusCode())
	}

	return resp.Body(), nil
}
