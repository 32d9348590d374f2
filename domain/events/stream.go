package events

import (
	"fmt"

	"github.com/aws/aws-lambda-go/events"

	"libreria-backend/domain/catalog"
	pkgerrors "libreria-backend/pkg/errors"
)

// ChangeKind tags a decoded change-stream record
type ChangeKind string

const (
	ChangeInsert ChangeKind = "INSERT"
	ChangeModify ChangeKind = "MODIFY"
	ChangeRemove ChangeKind = "REMOVE"
)

// ProductChange is a strictly decoded product-table stream record.
// Insert carries New, Modify carries New and Old, Remove carries Old.
// Malformed records are rejected at decode time instead of letting
// missing-field accesses propagate into the handlers.
type ProductChange struct {
	Kind ChangeKind
	New  *catalog.Product
	Old  *catalog.Product
}

// CategoryLinkChange is a strictly decoded join-table stream record
type CategoryLinkChange struct {
	Kind ChangeKind
	New  *catalog.CategoryLink
	Old  *catalog.CategoryLink
}

// AffectedProductID returns the product referenced by the change: the new
// association for inserts and modifies, the removed one for removes.
func (c CategoryLinkChange) AffectedProductID() string {
	if c.Kind == ChangeRemove {
		if c.Old == nil {
			return ""
		}
		return c.Old.ProductID
	}
	if c.New == nil {
		return ""
	}
	return c.New.ProductID
}

// DecodeProductRecord decodes one product-table stream record
func DecodeProductRecord(rec events.DynamoDBEventRecord) (ProductChange, error) {
	kind, err := decodeKind(rec.EventName)
	if err != nil {
		return ProductChange{}, err
	}

	change := ProductChange{Kind: kind}
	if kind == ChangeInsert || kind == ChangeModify {
		p, err := decodeProductImage(rec.Change.NewImage, "new")
		if err != nil {
			return ProductChange{}, err
		}
		change.New = p
	}
	if kind == ChangeModify || kind == ChangeRemove {
		p, err := decodeProductImage(rec.Change.OldImage, "old")
		if err != nil {
			return ProductChange{}, err
		}
		change.Old = p
	}
	return change, nil
}

// DecodeCategoryLinkRecord decodes one join-table stream record
func DecodeCategoryLinkRecord(rec events.DynamoDBEventRecord) (CategoryLinkChange, error) {
	kind, err := decodeKind(rec.EventName)
	if err != nil {
		return CategoryLinkChange{}, err
	}

	change := CategoryLinkChange{Kind: kind}
	if kind == ChangeInsert || kind == ChangeModify {
		l, err := decodeLinkImage(rec.Change.NewImage, "new")
		if err != nil {
			return CategoryLinkChange{}, err
		}
		change.New = l
	}
	if kind == ChangeModify || kind == ChangeRemove {
		l, err := decodeLinkImage(rec.Change.OldImage, "old")
		if err != nil {
			return CategoryLinkChange{}, err
		}
		change.Old = l
	}
	return change, nil
}

func decodeKind(eventName string) (ChangeKind, error) {
	switch ChangeKind(eventName) {
	case ChangeInsert, ChangeModify, ChangeRemove:
		return ChangeKind(eventName), nil
	default:
		return "", pkgerrors.NewValidationError(fmt.Sprintf("unknown stream event name: %q", eventName))
	}
}

func decodeProductImage(image map[string]events.DynamoDBAttributeValue, side string) (*catalog.Product, error) {
	if len(image) == 0 {
		return nil, pkgerrors.NewValidationError(fmt.Sprintf("product record is missing its %s image", side))
	}

	p := &catalog.Product{
		ID:               stringField(image, "id"),
		Title:            stringField(image, "title"),
		NormalizedTitle:  stringField(image, "normalizedTitle"),
		Description:      stringField(image, "description"),
		Images:           stringListField(image, "images"),
		Code:             stringField(image, "code"),
		Price:            numberField(image, "price"),
		CategoryIDs:      stringListField(image, "categoryIds"),
		SearchableStatus: stringField(image, "searchableStatus"),
		CreatedAt:        stringField(image, "createdAt"),
		UpdatedAt:        stringField(image, "updatedAt"),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeLinkImage(image map[string]events.DynamoDBAttributeValue, side string) (*catalog.CategoryLink, error) {
	if len(image) == 0 {
		return nil, pkgerrors.NewValidationError(fmt.Sprintf("category link record is missing its %s image", side))
	}

	l := &catalog.CategoryLink{
		ID:               stringField(image, "id"),
		ProductID:        stringField(image, "productId"),
		CategoryID:       stringField(image, "categoryId"),
		ProductStatus:    stringField(image, "productStatus"),
		ProductTitle:     stringField(image, "productTitle"),
		ProductPrice:     numberField(image, "productPrice"),
		ProductCreatedAt: stringField(image, "productCreatedAt"),
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func stringField(image map[string]events.DynamoDBAttributeValue, name string) string {
	av, ok := image[name]
	if !ok || av.DataType() != events.DataTypeString {
		return ""
	}
	return av.String()
}

func numberField(image map[string]events.DynamoDBAttributeValue, name string) float64 {
	av, ok := image[name]
	if !ok || av.DataType() != events.DataTypeNumber {
		return 0
	}
	f, err := av.Float()
	if err != nil {
		return 0
	}
	return f
}

func stringListField(image map[string]events.DynamoDBAttributeValue, name string) []string {
	av, ok := image[name]
	if !ok {
		return nil
	}
	switch av.DataType() {
	case events.DataTypeList:
		list := av.List()
		out := make([]string, 0, len(list))
		for _, item := range list {
			if item.DataType() == events.DataTypeString {
				out = append(out, item.String())
			}
		}
		return out
	case events.DataTypeStringSet:
		return av.StringSet()
	default:
		return nil
	}
}
