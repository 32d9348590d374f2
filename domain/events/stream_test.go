package events

import (
	"testing"

	awsevents "github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libreria-backend/domain/catalog"
	"libreria-backend/tests/fixtures"
)

func TestDecodeProductRecord_Insert(t *testing.T) {
	product := fixtures.NewProductBuilder().
		WithID("prod-1").
		WithTitle("Biblia de Estudio").
		WithDescription("Edición ampliada").
		WithPrice(30.99).
		WithImages("product-images/prod-1/a.jpg", "product-images/prod-1/b.jpg").
		WithCategoryIDs("cat-1", "cat-2").
		Build()
	rec := fixtures.ProductStreamRecord("INSERT", product, nil)

	change, err := DecodeProductRecord(rec)

	require.NoError(t, err)
	assert.Equal(t, ChangeInsert, change.Kind)
	require.NotNil(t, change.New)
	assert.Nil(t, change.Old)
	assert.Equal(t, "prod-1", change.New.ID)
	assert.Equal(t, "Biblia de Estudio", change.New.Title)
	assert.Equal(t, "Edición ampliada", change.New.Description)
	assert.Equal(t, 30.99, change.New.Price)
	assert.Equal(t, []string{"product-images/prod-1/a.jpg", "product-images/prod-1/b.jpg"}, change.New.Images)
	assert.Equal(t, []string{"cat-1", "cat-2"}, change.New.CategoryIDs)
}

func TestDecodeProductRecord_ModifyCarriesBothImages(t *testing.T) {
	oldP := fixtures.NewProductBuilder().WithID("prod-1").WithTitle("Antes").Build()
	newP := fixtures.NewProductBuilder().WithID("prod-1").WithTitle("Después").Build()
	rec := fixtures.ProductStreamRecord("MODIFY", newP, oldP)

	change, err := DecodeProductRecord(rec)

	require.NoError(t, err)
	assert.Equal(t, ChangeModify, change.Kind)
	require.NotNil(t, change.New)
	require.NotNil(t, change.Old)
	assert.Equal(t, "Después", change.New.Title)
	assert.Equal(t, "Antes", change.Old.Title)
}

func TestDecodeProductRecord_RemoveCarriesOldOnly(t *testing.T) {
	oldP := fixtures.NewProductBuilder().WithID("prod-1").Build()
	rec := fixtures.ProductStreamRecord("REMOVE", nil, oldP)

	change, err := DecodeProductRecord(rec)

	require.NoError(t, err)
	assert.Equal(t, ChangeRemove, change.Kind)
	assert.Nil(t, change.New)
	require.NotNil(t, change.Old)
	assert.Equal(t, "prod-1", change.Old.ID)
}

func TestDecodeProductRecord_Malformed(t *testing.T) {
	tests := []struct {
		name string
		rec  awsevents.DynamoDBEventRecord
	}{
		{
			name: "unknown event name",
			rec:  fixtures.ProductStreamRecord("UPSERT", fixtures.NewProductBuilder().Build(), nil),
		},
		{
			name: "insert without new image",
			rec:  fixtures.ProductStreamRecord("INSERT", nil, nil),
		},
		{
			name: "modify without old image",
			rec:  fixtures.ProductStreamRecord("MODIFY", fixtures.NewProductBuilder().Build(), nil),
		},
		{
			name: "missing id",
			rec:  fixtures.ProductStreamRecord("INSERT", fixtures.NewProductBuilder().WithID("").Build(), nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeProductRecord(tt.rec)
			assert.Error(t, err)
		})
	}
}

func TestDecodeProductRecord_ToleratesWrongFieldTypes(t *testing.T) {
	rec := fixtures.ProductStreamRecord("INSERT", fixtures.NewProductBuilder().WithID("prod-1").Build(), nil)
	rec.Change.NewImage["price"] = awsevents.NewStringAttribute("not-a-number")
	rec.Change.NewImage["images"] = awsevents.NewNumberAttribute("42")

	change, err := DecodeProductRecord(rec)

	require.NoError(t, err)
	assert.Zero(t, change.New.Price)
	assert.Nil(t, change.New.Images)
}

func TestDecodeProductRecord_StringSetImages(t *testing.T) {
	rec := fixtures.ProductStreamRecord("INSERT", fixtures.NewProductBuilder().WithID("prod-1").Build(), nil)
	rec.Change.NewImage["images"] = awsevents.NewStringSetAttribute([]string{"product-images/prod-1/a.jpg"})

	change, err := DecodeProductRecord(rec)

	require.NoError(t, err)
	assert.Equal(t, []string{"product-images/prod-1/a.jpg"}, change.New.Images)
}

func TestDecodeCategoryLinkRecord_Insert(t *testing.T) {
	link := fixtures.NewCategoryLinkBuilder().
		WithID("link-1").
		WithProductID("prod-1").
		WithCategoryID("cat-9").
		Build()
	rec := fixtures.LinkStreamRecord("INSERT", &link, nil)

	change, err := DecodeCategoryLinkRecord(rec)

	require.NoError(t, err)
	assert.Equal(t, ChangeInsert, change.Kind)
	require.NotNil(t, change.New)
	assert.Equal(t, "link-1", change.New.ID)
	assert.Equal(t, "prod-1", change.New.ProductID)
	assert.Equal(t, "cat-9", change.New.CategoryID)
}

func TestDecodeCategoryLinkRecord_MissingProductID(t *testing.T) {
	link := catalog.CategoryLink{ID: "link-1", CategoryID: "cat-9"}
	rec := fixtures.LinkStreamRecord("INSERT", &link, nil)

	_, err := DecodeCategoryLinkRecord(rec)

	assert.Error(t, err)
}

func TestCategoryLinkChange_AffectedProductID(t *testing.T) {
	newLink := fixtures.NewCategoryLinkBuilder().WithProductID("prod-new").Build()
	oldLink := fixtures.NewCategoryLinkBuilder().WithProductID("prod-old").Build()

	insert := CategoryLinkChange{Kind: ChangeInsert, New: &newLink}
	remove := CategoryLinkChange{Kind: ChangeRemove, Old: &oldLink}
	modify := CategoryLinkChange{Kind: ChangeModify, New: &newLink, Old: &oldLink}

	assert.Equal(t, "prod-new", insert.AffectedProductID())
	assert.Equal(t, "prod-old", remove.AffectedProductID())
	assert.Equal(t, "prod-new", modify.AffectedProductID())
}
