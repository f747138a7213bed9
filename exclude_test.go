package pinpoint_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/pinpoint"
	"github.com/fwojciec/pinpoint/mock"
	"github.com/stretchr/testify/assert"
)

func TestClassify_NonContentTags(t *testing.T) {
	t.Parallel()

	for _, tag := range []string{
		"script", "style", "noscript", "iframe", "object", "embed",
		"svg", "canvas", "video", "audio", "map", "template",
		"head", "meta", "link",
	} {
		t.Run(tag, func(t *testing.T) {
			t.Parallel()

			el := mock.Wire(&mock.Element{Tag: tag, Own: "var x = 1;"})
			assert.Equal(t, pinpoint.SkipSubtree, pinpoint.Classify(el))
		})
	}
}

func TestClassify_ContentTags(t *testing.T) {
	t.Parallel()

	for _, tag := range []string{"div", "p", "span", "a", "h1", "li", "td"} {
		t.Run(tag, func(t *testing.T) {
			t.Parallel()

			el := mock.Wire(&mock.Element{Tag: tag, Own: "text"})
			assert.Equal(t, pinpoint.Accept, pinpoint.Classify(el))
		})
	}
}

func TestClassify_ToolOwned(t *testing.T) {
	t.Parallel()

	t.Run("marker attribute on the element", func(t *testing.T) {
		t.Parallel()

		el := mock.Wire(&mock.Element{
			Tag:   "div",
			Attrs: map[string]string{pinpoint.MarkerAttr: ""},
		})
		assert.Equal(t, pinpoint.SkipSubtree, pinpoint.Classify(el))
	})

	t.Run("marker attribute on an ancestor", func(t *testing.T) {
		t.Parallel()

		leaf := &mock.Element{Tag: "span", Own: "panel text"}
		mock.Wire(&mock.Element{
			Tag:   "div",
			Attrs: map[string]string{pinpoint.MarkerAttr: ""},
			Kids: []*mock.Element{
				{Tag: "div", Kids: []*mock.Element{leaf}},
			},
		})
		assert.Equal(t, pinpoint.SkipSubtree, pinpoint.Classify(leaf))
	})

	t.Run("host root id on an ancestor", func(t *testing.T) {
		t.Parallel()

		leaf := &mock.Element{Tag: "p", Own: "summary"}
		mock.Wire(&mock.Element{
			Tag:   "div",
			Attrs: map[string]string{"id": "pinpoint-panel"},
			Kids:  []*mock.Element{leaf},
		})
		assert.Equal(t, pinpoint.SkipSubtree, pinpoint.Classify(leaf))
	})

	t.Run("unrelated id is accepted", func(t *testing.T) {
		t.Parallel()

		el := mock.Wire(&mock.Element{
			Tag:   "div",
			Attrs: map[string]string{"id": "content"},
		})
		assert.Equal(t, pinpoint.Accept, pinpoint.Classify(el))
	})
}

func TestClassify_Visibility(t *testing.T) {
	t.Parallel()

	t.Run("hidden attribute", func(t *testing.T) {
		t.Parallel()

		el := mock.Wire(&mock.Element{Tag: "div", Attrs: map[string]string{"hidden": ""}})
		assert.Equal(t, pinpoint.SkipSubtree, pinpoint.Classify(el))
	})

	t.Run("aria-hidden true", func(t *testing.T) {
		t.Parallel()

		el := mock.Wire(&mock.Element{Tag: "div", Attrs: map[string]string{"aria-hidden": "true"}})
		assert.Equal(t, pinpoint.SkipSubtree, pinpoint.Classify(el))
	})

	t.Run("aria-hidden false is accepted", func(t *testing.T) {
		t.Parallel()

		el := mock.Wire(&mock.Element{Tag: "div", Attrs: map[string]string{"aria-hidden": "false"}})
		assert.Equal(t, pinpoint.Accept, pinpoint.Classify(el))
	})

	t.Run("computed invisibility", func(t *testing.T) {
		t.Parallel()

		el := mock.Wire(&mock.Element{Tag: "div", Invisible: true})
		assert.Equal(t, pinpoint.SkipSubtree, pinpoint.Classify(el))
	})

	t.Run("failing style computation counts as visible", func(t *testing.T) {
		t.Parallel()

		el := mock.Wire(&mock.Element{
			Tag:        "div",
			Invisible:  true,
			VisibleErr: errors.New("style computation unavailable"),
		})
		assert.Equal(t, pinpoint.Accept, pinpoint.Classify(el))
	})
}

func TestClassify_Nil(t *testing.T) {
	t.Parallel()

	assert.Equal(t, pinpoint.SkipSubtree, pinpoint.Classify(nil))
}
