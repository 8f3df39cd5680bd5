package quotable

import "errors"

// Quote is a single quotation as returned by the service.
type Quote struct {
	ID           string   `json:"_id" yaml:"id"`
	Content      string   `json:"content" yaml:"content"`
	Author       string   `json:"author" yaml:"author"`
	AuthorSlug   string   `json:"authorSlug,omitempty" yaml:"authorSlug,omitempty"`
	Length       int      `json:"length" yaml:"length"`
	Tags         []string `json:"tags" yaml:"tags"`
	DateAdded    string   `json:"dateAdded,omitempty" yaml:"dateAdded,omitempty"`
	DateModified string   `json:"dateModified,omitempty" yaml:"dateModified,omitempty"`
}

// Quotes is one page of the quote list.
type Quotes struct {
	Count         int     `json:"count" yaml:"count"`
	TotalCount    int     `json:"totalCount" yaml:"totalCount"`
	Page          int     `json:"page" yaml:"page"`
	TotalPages    int     `json:"totalPages" yaml:"totalPages"`
	LastItemIndex *int    `json:"lastItemIndex" yaml:"lastItemIndex"`
	Results       []Quote `json:"results" yaml:"results"`
}

// HasMorePages checks if pages follow this one
func (q *Quotes) HasMorePages() bool {
	return q.Page < q.TotalPages
}

// validator is implemented by results with fields the service always sends.
type validator interface {
	validate() error
}

func (q *Quote) validate() error {
	if q.ID == "" {
		return errors.New("missing required field _id")
	}
	return nil
}

func (q *Quotes) validate() error {
	if q.Results == nil {
		return errors.New("missing required field results")
	}
	return nil
}
