package search

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductSearchRequest_WireShape(t *testing.T) {
	// Arrange
	req := NewProductSearchRequest("products", "biblia", 20, 10)

	// Act
	raw, err := json.Marshal(req)

	// Assert
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "search", decoded["operation"])
	assert.Equal(t, "products", decoded["index"])

	body := decoded["params"].(map[string]interface{})["body"].(map[string]interface{})
	assert.Equal(t, float64(20), body["from"])
	assert.Equal(t, float64(10), body["size"])

	boolQuery := body["query"].(map[string]interface{})["bool"].(map[string]interface{})
	must := boolQuery["must"].([]interface{})
	require.Len(t, must, 1)
	multiMatch := must[0].(map[string]interface{})["multi_match"].(map[string]interface{})
	assert.Equal(t, "biblia", multiMatch["query"])

	filter := boolQuery["filter"].([]interface{})
	require.Len(t, filter, 1)
	term := filter[0].(map[string]interface{})["term"].(map[string]interface{})
	assert.Equal(t, "ACTIVE", term["searchableStatus"])

	highlight := body["highlight"].(map[string]interface{})["fields"].(map[string]interface{})
	assert.Contains(t, highlight, "title")
}

func TestResponse_Products(t *testing.T) {
	// Arrange
	raw := `{
		"hits": {
			"hits": [
				{
					"_id": "prod-1",
					"_source": {
						"title": "Biblia de Estudio",
						"description": "Edición ampliada",
						"price": 34.9,
						"images": ["product-images/prod-1/a.jpg"]
					},
					"highlight": {"title": ["<em>Biblia</em> de Estudio"]}
				},
				{
					"_id": "prod-2",
					"_source": {"title": "Himnario", "price": 12}
				}
			]
		}
	}`

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))

	// Act
	products := resp.Products()

	// Assert
	require.Len(t, products, 2)
	assert.Equal(t, "prod-1", products[0].ID)
	assert.Equal(t, "Biblia de Estudio", products[0].Title)
	assert.Equal(t, 34.9, products[0].Price)
	assert.Equal(t, []string{"product-images/prod-1/a.jpg"}, products[0].Images)
	assert.Equal(t, []string{"<em>Biblia</em> de Estudio"}, products[0].Highlight["title"])
	assert.Equal(t, "prod-2", products[1].ID)
	assert.Empty(t, products[1].Highlight)
}

func TestResponse_Products_EmptyHits(t *testing.T) {
	var resp Response
	require.NoError(t, json.Unmarshal([]byte(`{"hits":{"hits":[]}}`), &resp))

	assert.Empty(t, resp.Products())
}
