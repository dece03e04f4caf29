package diagnostics_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mathlex/internal/diagnostics"
	"mathlex/internal/source"
)

func TestBagCounts(t *testing.T) {
	bag := diagnostics.NewBag()
	assert.False(t, bag.HasErrors())

	bag.Add(diagnostics.NewError("boom"))
	bag.Add(diagnostics.NewWarning("meh"))
	bag.Add(diagnostics.NewWarning("meh again"))
	bag.Add(diagnostics.NewInfo("fyi"))

	assert.True(t, bag.HasErrors())
	assert.Equal(t, 1, bag.ErrorCount())
	assert.Equal(t, 2, bag.WarningCount())
	assert.Len(t, bag.Diagnostics(), 4)

	bag.Clear()
	assert.False(t, bag.HasErrors())
	assert.Empty(t, bag.Diagnostics())
}

func TestBagConcurrentAdd(t *testing.T) {
	bag := diagnostics.NewBag()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bag.Add(diagnostics.NewWarning("w"))
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, bag.WarningCount())
}

func TestBagEmitAllSummary(t *testing.T) {
	var buf bytes.Buffer
	emitter := diagnostics.NewEmitterWithWriter(&buf).DisableColor()

	bag := diagnostics.NewBag()
	bag.Add(diagnostics.NewError("bad literal").WithCode("L0001"))
	bag.Add(diagnostics.NewWarning("odd lexeme"))
	bag.EmitAll(emitter, "1.2.3")

	out := buf.String()
	assert.Contains(t, out, "error[L0001]: bad literal")
	assert.Contains(t, out, "warning: odd lexeme")
	assert.Contains(t, out, "tokenization failed with 1 error(s) and 1 warning(s)")
}

func TestBagEmitAllWarningsOnly(t *testing.T) {
	var buf bytes.Buffer
	emitter := diagnostics.NewEmitterWithWriter(&buf).DisableColor()

	bag := diagnostics.NewBag()
	bag.Add(diagnostics.UnrecognizedLexeme(source.NewSpan(0, 1), "a"))
	bag.EmitAll(emitter, "a+1")

	out := buf.String()
	require.Contains(t, out, `unrecognized lexeme "a"`)
	assert.Contains(t, out, "tokenized with 1 warning(s)")
	assert.NotContains(t, out, "tokenization failed")
}
