package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct_Product(t *testing.T) {
	body := `{
		"slug": "zx9-speaker",
		"name": "ZX9 Speaker",
		"category": "speakers",
		"price": 4500,
		"isNew": true,
		"includes": [{"quantity": 2, "item": "Speaker unit"}],
		"tasks": [{"title": "photograph", "subtasks": [{"title": "front", "isCompleted": true}]}]
	}`

	var c CreateProduct
	require.NoError(t, json.Unmarshal([]byte(body), &c))

	p := c.Product()
	assert.Equal(t, "zx9-speaker", p.Slug)
	assert.Equal(t, "ZX9 Speaker", p.Name)
	require.NotNil(t, p.Price)
	assert.Equal(t, 4500.0, *p.Price)
	assert.True(t, p.IsNew)
	assert.Equal(t, 2, p.Includes[0].Quantity)
	require.Len(t, p.Tasks, 1)
	assert.Equal(t, "photograph", p.Tasks[0].Title)
	assert.True(t, p.Tasks[0].Subtasks[0].IsCompleted)
	assert.True(t, p.Tasks[0].ID.IsZero())
}

func TestCreateProduct_ZeroPriceIsPresent(t *testing.T) {
	var c CreateProduct
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Free","price":0}`), &c))

	require.NotNil(t, c.Price)
	assert.Zero(t, *c.Price)
}

func TestUpdateProduct_AbsentFieldsStayNil(t *testing.T) {
	var u UpdateProduct
	require.NoError(t, json.Unmarshal([]byte(`{"name":"X"}`), &u))

	require.NotNil(t, u.Name)
	assert.Equal(t, "X", *u.Name)
	assert.Nil(t, u.Category)
	assert.Nil(t, u.Price)
	assert.Nil(t, u.Tasks)
}

func TestUpdateProduct_TasksKeepIDs(t *testing.T) {
	body := `{"tasks":[
		{"_id":"65a1f0c2e4b0a1b2c3d4e5f6","title":"photograph","status":"Done"},
		{"title":"pack"}
	]}`

	var u UpdateProduct
	require.NoError(t, json.Unmarshal([]byte(body), &u))
	require.Len(t, u.Tasks, 2)

	first := u.Tasks[0].Task()
	assert.Equal(t, "65a1f0c2e4b0a1b2c3d4e5f6", first.ID.Hex())
	assert.Equal(t, "photograph", first.Title)
	assert.Equal(t, "Done", first.Status)
	assert.True(t, u.Tasks[1].Task().ID.IsZero())
}

func TestUpdateProduct_MalformedTaskID(t *testing.T) {
	var u UpdateProduct
	err := json.Unmarshal([]byte(`{"tasks":[{"_id":"nope","title":"x"}]}`), &u)
	assert.Error(t, err)
}
