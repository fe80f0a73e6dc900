package watcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestDescribe(t *testing.T) {
	id := bson.NewObjectID()

	event := changeEvent{OperationType: "insert"}
	event.DocumentKey.ID = id
	assert.Equal(t, "insert _id="+id.Hex(), describe(event))

	assert.Equal(t, "drop", describe(changeEvent{OperationType: "drop"}))
	assert.Equal(t, "unknown", describe(changeEvent{}))
}
