package dump

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"

	"github.com/0xCCF4/udump/ucode"
)

func labelFS(text string) fstest.MapFS {
	return fstest.MapFS{
		"labels.csv": &fstest.MapFile{Data: []byte(text)},
	}
}

func TestLoadLabels(t *testing.T) {
	assert := assert.New(t)

	labels, err := LoadLabels(labelFS(
		"# generated from the uefi agent\n"+
			"0x0190,rdrand_xlat\n"+
			"0x0190 + 4*2,rdrand_end\n"+
			"0x7c00,msram_start\n",
	), "labels.csv")
	assert.NoError(err)

	assert.Equal(Labels{
		ucode.Addr(0x190):  "rdrand_xlat",
		ucode.Addr(0x198):  "rdrand_end",
		ucode.Addr(0x7c00): "msram_start",
	}, labels)
}

func TestLoadLabelsDuplicate(t *testing.T) {
	assert := assert.New(t)

	// The newest record for an address wins.
	labels, err := LoadLabels(labelFS("0x0190,old_name\n0x0190,new_name\n"), "labels.csv")
	assert.NoError(err)
	assert.Equal(Labels{ucode.Addr(0x190): "new_name"}, labels)
}

func TestLoadLabelsMalformed(t *testing.T) {
	assert := assert.New(t)

	for _, text := range []string{
		"not_an_address,name\n",
		"-4,name\n",
		"'0x190',name\n", // strings are not addresses
		"0x0190,\n",
		"0x0190\n", // missing field
	} {
		_, err := LoadLabels(labelFS(text), "labels.csv")
		var load ErrDataLoad
		if assert.ErrorAs(err, &load, text) {
			assert.Equal("labels.csv", load.Source, text)
		}
	}

	_, err := LoadLabels(labelFS("0x0190,"), "labels.csv")
	assert.ErrorIs(err, ErrLabelEmpty)

	_, err = LoadLabels(fstest.MapFS{}, "labels.csv")
	assert.Error(err)
}
