package transform_test

import (
	"testing"

	"github.com/abondrn/nussinov/transform"
	"github.com/stretchr/testify/assert"
)

func TestTranscribe(t *testing.T) {
	assert.Equal(t, "GACUCC", transform.Transcribe("GACTCC"))
	assert.Equal(t, "gacucc", transform.Transcribe("gactcc"))
	assert.Equal(t, "", transform.Transcribe(""))
}

func TestComplement(t *testing.T) {
	assert.Equal(t, "UACG", transform.Complement("AUGC"))
	assert.Equal(t, "uaNg", transform.Complement("auNc"))
}

func TestReverseComplement(t *testing.T) {
	assert.Equal(t, "GCAU", transform.ReverseComplement("AUGC"))
	assert.Equal(t, "", transform.ReverseComplement(""))
}
