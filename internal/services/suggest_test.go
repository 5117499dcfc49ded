package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestSuggestService_Suggest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		model := NewMockContentGenerator(ctrl)
		svc := NewSuggestService(model)

		model.EXPECT().
			GenerateContent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, prompt string) (string, error) {
				// The user message is embedded into the fixed template
				assert.True(t, strings.Contains(prompt, `"somewhere quiet"`))
				assert.True(t, strings.Contains(prompt, "SensoryScout"))
				return `{"suggestions":[
					{"name":"City Library","type":"Library","reason":"Silent reading rooms."},
					{"name":"Zen Garden","type":"Park","reason":"Secluded and calm."}
				]}`, nil
			})

		suggestions, err := svc.Suggest(ctx, "somewhere quiet")
		assert.NoError(t, err)
		assert.Len(t, suggestions.Suggestions, 2)
		assert.Equal(t, "City Library", suggestions.Suggestions[0].Name)
		assert.Equal(t, "Park", suggestions.Suggestions[1].Type)
	})

	t.Run("ProviderError", func(t *testing.T) {
		model := NewMockContentGenerator(ctrl)
		svc := NewSuggestService(model)

		model.EXPECT().
			GenerateContent(gomock.Any(), gomock.Any()).
			Return("", errors.New("model request failed with status 429"))

		suggestions, err := svc.Suggest(ctx, "somewhere quiet")
		assert.Error(t, err)
		assert.Nil(t, suggestions)
	})

	t.Run("UnparsableCompletion", func(t *testing.T) {
		model := NewMockContentGenerator(ctrl)
		svc := NewSuggestService(model)

		model.EXPECT().
			GenerateContent(gomock.Any(), gomock.Any()).
			Return("Sure! Here are some suggestions: ...", nil)

		suggestions, err := svc.Suggest(ctx, "somewhere quiet")
		assert.Error(t, err)
		assert.Nil(t, suggestions)
	})
}
