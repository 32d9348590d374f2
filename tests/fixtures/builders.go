// Package fixtures provides builders and stream-record helpers for tests.
package fixtures

import (
	"strconv"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"libreria-backend/domain/catalog"
)

// ProductBuilder helps create test products with default values
type ProductBuilder struct {
	product catalog.Product
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		product: catalog.Product{
			ID:        "prod-123",
			Title:     "Biblia de Estudio",
			Price:     25.50,
			CreatedAt: "2024-01-15T10:00:00Z",
			UpdatedAt: "2024-01-15T10:00:00Z",
		},
	}
}

func (b *ProductBuilder) WithID(id string) *ProductBuilder {
	b.product.ID = id
	return b
}

func (b *ProductBuilder) WithTitle(title string) *ProductBuilder {
	b.product.Title = title
	return b
}

func (b *ProductBuilder) WithNormalizedTitle(normalized string) *ProductBuilder {
	b.product.NormalizedTitle = normalized
	return b
}

func (b *ProductBuilder) WithDescription(description string) *ProductBuilder {
	b.product.Description = description
	return b
}

func (b *ProductBuilder) WithPrice(price float64) *ProductBuilder {
	b.product.Price = price
	return b
}

func (b *ProductBuilder) WithImages(images ...string) *ProductBuilder {
	b.product.Images = images
	return b
}

func (b *ProductBuilder) WithCategoryIDs(ids ...string) *ProductBuilder {
	b.product.CategoryIDs = ids
	return b
}

func (b *ProductBuilder) Searchable() *ProductBuilder {
	b.product.SearchableStatus = catalog.StatusSearchable
	return b
}

func (b *ProductBuilder) Build() *catalog.Product {
	p := b.product
	return &p
}

// CategoryLinkBuilder helps create test join rows with default values
type CategoryLinkBuilder struct {
	link catalog.CategoryLink
}

func NewCategoryLinkBuilder() *CategoryLinkBuilder {
	return &CategoryLinkBuilder{
		link: catalog.CategoryLink{
			ID:         uuid.NewString(),
			ProductID:  "prod-123",
			CategoryID: "cat-1",
		},
	}
}

func (b *CategoryLinkBuilder) WithID(id string) *CategoryLinkBuilder {
	b.link.ID = id
	return b
}

func (b *CategoryLinkBuilder) WithProductID(productID string) *CategoryLinkBuilder {
	b.link.ProductID = productID
	return b
}

func (b *CategoryLinkBuilder) WithCategoryID(categoryID string) *CategoryLinkBuilder {
	b.link.CategoryID = categoryID
	return b
}

func (b *CategoryLinkBuilder) Build() catalog.CategoryLink {
	return b.link
}

// CleanupJobBuilder helps create test cleanup jobs with default values
type CleanupJobBuilder struct {
	job catalog.CleanupJob
}

func NewCleanupJobBuilder() *CleanupJobBuilder {
	return &CleanupJobBuilder{
		job: catalog.CleanupJob{
			JobID:     uuid.NewString(),
			ProductID: "prod-123",
		},
	}
}

func (b *CleanupJobBuilder) WithProductID(productID string) *CleanupJobBuilder {
	b.job.ProductID = productID
	return b
}

func (b *CleanupJobBuilder) WithImages(keys ...string) *CleanupJobBuilder {
	b.job.ProductImages = keys
	return b
}

func (b *CleanupJobBuilder) WithRetryCount(count int) *CleanupJobBuilder {
	b.job.RetryCount = count
	return b
}

func (b *CleanupJobBuilder) WithSkipCategories() *CleanupJobBuilder {
	b.job.SkipCategories = true
	return b
}

func (b *CleanupJobBuilder) Build() catalog.CleanupJob {
	return b.job
}

// ProductImage renders a product as a change-stream attribute map
func ProductImage(p *catalog.Product) map[string]events.DynamoDBAttributeValue {
	image := map[string]events.DynamoDBAttributeValue{
		"id":    events.NewStringAttribute(p.ID),
		"title": events.NewStringAttribute(p.Title),
		"price": events.NewNumberAttribute(strconv.FormatFloat(p.Price, 'f', -1, 64)),
	}
	if p.NormalizedTitle != "" {
		image["normalizedTitle"] = events.NewStringAttribute(p.NormalizedTitle)
	}
	if p.Description != "" {
		image["description"] = events.NewStringAttribute(p.Description)
	}
	if p.SearchableStatus != "" {
		image["searchableStatus"] = events.NewStringAttribute(p.SearchableStatus)
	}
	if p.CreatedAt != "" {
		image["createdAt"] = events.NewStringAttribute(p.CreatedAt)
	}
	if p.UpdatedAt != "" {
		image["updatedAt"] = events.NewStringAttribute(p.UpdatedAt)
	}
	if len(p.Images) > 0 {
		image["images"] = stringList(p.Images)
	}
	if len(p.CategoryIDs) > 0 {
		image["categoryIds"] = stringList(p.CategoryIDs)
	}
	return image
}

// LinkImage renders a join row as a change-stream attribute map
func LinkImage(l catalog.CategoryLink) map[string]events.DynamoDBAttributeValue {
	image := map[string]events.DynamoDBAttributeValue{
		"id":         events.NewStringAttribute(l.ID),
		"productId":  events.NewStringAttribute(l.ProductID),
		"categoryId": events.NewStringAttribute(l.CategoryID),
	}
	if l.ProductStatus != "" {
		image["productStatus"] = events.NewStringAttribute(l.ProductStatus)
	}
	if l.ProductTitle != "" {
		image["productTitle"] = events.NewStringAttribute(l.ProductTitle)
	}
	if l.ProductPrice != 0 {
		image["productPrice"] = events.NewNumberAttribute(strconv.FormatFloat(l.ProductPrice, 'f', -1, 64))
	}
	return image
}

// ProductStreamRecord builds one product-table stream record. The old
// image is included for MODIFY and REMOVE, the new image for INSERT and
// MODIFY, matching what the stream actually delivers.
func ProductStreamRecord(eventName string, newP, oldP *catalog.Product) events.DynamoDBEventRecord {
	rec := events.DynamoDBEventRecord{
		EventID:   uuid.NewString(),
		EventName: eventName,
	}
	if newP != nil {
		rec.Change.NewImage = ProductImage(newP)
	}
	if oldP != nil {
		rec.Change.OldImage = ProductImage(oldP)
	}
	return rec
}

// LinkStreamRecord builds one join-table stream record
func LinkStreamRecord(eventName string, newL, oldL *catalog.CategoryLink) events.DynamoDBEventRecord {
	rec := events.DynamoDBEventRecord{
		EventID:   uuid.NewString(),
		EventName: eventName,
	}
	if newL != nil {
		rec.Change.NewImage = LinkImage(*newL)
	}
	if oldL != nil {
		rec.Change.OldImage = LinkImage(*oldL)
	}
	return rec
}

func stringList(values []string) events.DynamoDBAttributeValue {
	items := make([]events.DynamoDBAttributeValue, 0, len(values))
	for _, v := range values {
		items = append(items, events.NewStringAttribute(v))
	}
	return events.NewListAttribute(items)
}
