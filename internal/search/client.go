// Package search talks to the caller-addressed Elasticsearch backend and
// assembles the boolean queries derived from structured natural-language
// queries.
package search

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"talentlens/internal/config"
	"talentlens/internal/logging"
	"talentlens/pkg/utils"
)

// structureProbe asks for zero hits plus a terms aggregation over _source,
// which returns the index's key landscape without any documents.
var structureProbe = map[string]interface{}{
	"size": 0,
	"aggs": map[string]interface{}{
		"keys": map[string]interface{}{
			"terms": map[string]interface{}{
				"field": "_source",
			},
		},
	},
}

// Client fetches index structure from an Elasticsearch endpoint supplied per
// request. The base URL is never configured: callers address their own
// cluster through the elastic_url header.
type Client struct {
	http   *resty.Client
	logger logging.Logger
}

// NewClient creates a search client with the configured request timeout.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		http: resty.New().
			SetTimeout(cfg.Search.Timeout).
			SetHeader("Content-Type", "application/json"),
		logger: logging.GetGlobalLogger(),
	}
}

// FetchStructure retrieves the field structure of the index behind elasticURL
// by running the aggregation probe against its _search endpoint. The decoded
// response body is returned as-is; prompt building consumes it verbatim.
func (c *Client) FetchStructure(ctx context.Context, elasticURL string) (map[string]interface{}, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(structureProbe).
		Post(elasticURL + "/_search")
	if err != nil {
		return nil, utils.NewSearchError(fmt.Sprintf("Error fetching JSON structure: %v", err))
	}

	if resp.IsError() {
		reason := gjson.GetBytes(resp.Body(), "error.reason").String()
		if reason == "" {
			reason = resp.Status()
		}
		c.logger.Error("Search backend returned error", map[string]interface{}{
			"status": resp.StatusCode(),
			"reason": reason,
		})
		return nil, utils.NewSearchError(fmt.Sprintf("Error fetching JSON structure: %s", reason))
	}

	var structure map[string]interface{}
	if err := json.Unmarshal(resp.Body(), &structure); err != nil {
		return nil, utils.NewSearchError(fmt.Sprintf("Error fetching JSON structure: %v", err))
	}

	return structure, nil
}
