package quotable

import (
	"fmt"
	"strconv"
	"strings"
)

// Defaults applied to list requests when the caller leaves Limit or Page at zero.
const (
	DefaultLimit = 20
	DefaultPage  = 1
)

// ParamName is the wire name of a query parameter.
type ParamName string

const (
	ParamMinLength ParamName = "minLength"
	ParamMaxLength ParamName = "maxLength"
	ParamTags      ParamName = "tags"
	ParamAuthors   ParamName = "authors"
	ParamSortBy    ParamName = "sortBy"
	ParamOrder     ParamName = "order"
	ParamLimit     ParamName = "limit"
	ParamPage      ParamName = "page"
)

// QueryParameter is a single name/value pair of a request query string.
type QueryParameter struct {
	Name  ParamName
	Value string
}

// String renders the parameter unescaped, for logs.
func (p QueryParameter) String() string {
	return string(p.Name) + "=" + p.Value
}

func intParam(name ParamName, v int) QueryParameter {
	return QueryParameter{Name: name, Value: strconv.Itoa(v)}
}

// SortField is a field the list endpoint can order by.
type SortField int

const (
	// SortUnset leaves ordering to the service.
	SortUnset SortField = iota
	SortByDateAdded
	SortByDateModified
	SortByAuthor
	SortByContent
)

// String returns the wire value, or an empty string for SortUnset.
func (s SortField) String() string {
	switch s {
	case SortByDateAdded:
		return "dateAdded"
	case SortByDateModified:
		return "dateModified"
	case SortByAuthor:
		return "author"
	case SortByContent:
		return "content"
	default:
		return ""
	}
}

// ParseSortField maps a wire value (case-insensitive) to a SortField.
// An empty string yields SortUnset.
func ParseSortField(s string) (SortField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return SortUnset, nil
	case "dateadded":
		return SortByDateAdded, nil
	case "datemodified":
		return SortByDateModified, nil
	case "author":
		return SortByAuthor, nil
	case "content":
		return SortByContent, nil
	}
	return SortUnset, fmt.Errorf("invalid sort field: %s (must be one of dateAdded, dateModified, author, content)", s)
}

// SortOrder is the direction of a sorted list.
type SortOrder int

const (
	// OrderUnset leaves the direction to the service.
	OrderUnset SortOrder = iota
	OrderAscending
	OrderDescending
)

// String returns the wire value, or an empty string for OrderUnset.
func (o SortOrder) String() string {
	switch o {
	case OrderAscending:
		return "asc"
	case OrderDescending:
		return "desc"
	default:
		return ""
	}
}

// ParseSortOrder accepts asc/ascending and desc/descending.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return OrderUnset, nil
	case "asc", "ascending":
		return OrderAscending, nil
	case "desc", "descending":
		return OrderDescending, nil
	}
	return OrderUnset, fmt.Errorf("invalid sort order: %s (must be 'asc' or 'desc')", s)
}

// Filter holds the arguments shared by the list and random endpoints.
type Filter struct {
	MinLength *int
	MaxLength *int
	Tags      []string
	TagMode   TagCombinator
	Authors   []string
}

// ListOptions holds the arguments of a quote list request.
type ListOptions struct {
	Filter

	SortBy SortField
	Order  SortOrder

	// Limit and Page are always sent. Values below 1 are not valid on the
	// wire and fall back to DefaultLimit and DefaultPage.
	Limit int
	Page  int
}

// Int returns a pointer to v, for the optional bounds of a Filter.
func Int(v int) *int {
	return &v
}

// Parameters returns one parameter per provided argument, in the order
// minLength, maxLength, tags, authors.
func (f Filter) Parameters() []QueryParameter {
	params := make([]QueryParameter, 0, 4)

	if f.MinLength != nil {
		params = append(params, intParam(ParamMinLength, *f.MinLength))
	}
	if f.MaxLength != nil {
		params = append(params, intParam(ParamMaxLength, *f.MaxLength))
	}
	if len(f.Tags) > 0 {
		params = append(params, QueryParameter{Name: ParamTags, Value: EncodeTags(f.Tags, f.TagMode)})
	}
	if len(f.Authors) > 0 {
		params = append(params, QueryParameter{Name: ParamAuthors, Value: EncodeAuthors(f.Authors)})
	}

	return params
}

// Parameters returns the list query: limit and page first, always, then the
// filter parameters, then sortBy and order when set.
func (o ListOptions) Parameters() []QueryParameter {
	limit, page := o.Limit, o.Page
	if limit < 1 {
		limit = DefaultLimit
	}
	if page < 1 {
		page = DefaultPage
	}

	params := make([]QueryParameter, 0, 8)
	params = append(params, intParam(ParamLimit, limit), intParam(ParamPage, page))
	params = append(params, o.Filter.Parameters()...)

	if o.SortBy != SortUnset {
		params = append(params, QueryParameter{Name: ParamSortBy, Value: o.SortBy.String()})
	}
	if o.Order != OrderUnset {
		params = append(params, QueryParameter{Name: ParamOrder, Value: o.Order.String()})
	}

	return params
}
