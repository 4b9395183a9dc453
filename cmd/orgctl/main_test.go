// cmd/orgctl/main_test.go
package main

import (
	"testing"

	"github.com/bitloft/orgkit/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestSummarizeNodes(t *testing.T) {
	personnel, annotations := summarizeNodes([]model.Node{
		{ID: "n1", Kind: model.NodePersonnel},
		{ID: "n2", Kind: model.NodePersonnel},
		{ID: "n3", Kind: model.NodeAnnotation},
		{ID: "n4", Kind: model.NodeKind("unknown")},
	})

	assert.Equal(t, 2, personnel)
	assert.Equal(t, 1, annotations)
}
