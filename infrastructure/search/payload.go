package search

import (
	"libreria-backend/domain/catalog"
)

// Request is the wire shape consumed by the full-text search engine
// proxy: {operation, index, params:{body:{...}}}.
type Request struct {
	Operation string `json:"operation"`
	Index     string `json:"index"`
	Params    Params `json:"params"`
}

// Params wraps the engine request body
type Params struct {
	Body Body `json:"body"`
}

// Body is the engine query body
type Body struct {
	From      int                 `json:"from"`
	Size      int                 `json:"size"`
	Query     Query               `json:"query"`
	Highlight *Highlight          `json:"highlight,omitempty"`
	Sort      []map[string]string `json:"sort,omitempty"`
}

// Query wraps a boolean query
type Query struct {
	Bool BoolQuery `json:"bool"`
}

// BoolQuery carries must and filter clauses
type BoolQuery struct {
	Must   []map[string]interface{} `json:"must"`
	Filter []map[string]interface{} `json:"filter,omitempty"`
}

// Highlight asks the engine to mark matched fragments
type Highlight struct {
	Fields map[string]struct{} `json:"fields"`
}

// NewProductSearchRequest builds the engine request for a product term
// search: a multi-field match on title and description, filtered to
// searchable products, sorted by normalized title, with title highlights.
func NewProductSearchRequest(index, term string, from, size int) Request {
	return Request{
		Operation: "search",
		Index:     index,
		Params: Params{
			Body: Body{
				From: from,
				Size: size,
				Query: Query{
					Bool: BoolQuery{
						Must: []map[string]interface{}{
							{
								"multi_match": map[string]interface{}{
									"query":  term,
									"fields": []string{"title", "description"},
								},
							},
						},
						Filter: []map[string]interface{}{
							{
								"term": map[string]interface{}{
									"searchableStatus": catalog.StatusSearchable,
								},
							},
						},
					},
				},
				Highlight: &Highlight{
					Fields: map[string]struct{}{
						"title": {},
					},
				},
				Sort: []map[string]string{
					{"normalizedTitle.keyword": "asc"},
				},
			},
		},
	}
}

// Response is the engine response envelope
type Response struct {
	Hits struct {
		Hits []Hit `json:"hits"`
	} `json:"hits"`
}

// Hit is one engine result document
type Hit struct {
	ID        string              `json:"_id"`
	Source    hitSource           `json:"_source"`
	Highlight map[string][]string `json:"highlight,omitempty"`
}

type hitSource struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
}

// Products maps the engine hits into the uniform ProductFromSearch shape
func (r Response) Products() []catalog.ProductFromSearch {
	products := make([]catalog.ProductFromSearch, 0, len(r.Hits.Hits))
	for _, hit := range r.Hits.Hits {
		products = append(products, catalog.ProductFromSearch{
			ID:          hit.ID,
			Title:       hit.Source.Title,
			Description: hit.Source.Description,
			Price:       hit.Source.Price,
			Images:      hit.Source.Images,
			Highlight:   hit.Highlight,
		})
	}
	return products
}
