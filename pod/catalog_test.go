package pod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Sections(t *testing.T) {
	c := NewCatalog()

	var names []string
	for _, s := range c.Sections() {
		names = append(names, s.Name)
		assert.NotEmpty(t, s.Fields, "section %s", s.Name)
	}
	assert.Equal(t, []string{"Pod", "CPU", "GPU", "Network"}, names)
}

func TestCatalog_KeysIncludeInterpretedKeys(t *testing.T) {
	keys := NewCatalog().Keys()
	for _, k := range []string{KeyPodID, KeyGPUCount, KeyPublicIP, KeySSHPort, KeyHostname} {
		assert.Contains(t, keys, k)
	}
}

func TestCatalog_FieldsHaveLabelAndKey(t *testing.T) {
	for _, s := range NewCatalog().Sections() {
		for _, f := range s.Fields {
			require.NotEmpty(t, f.Label)
			require.NotEmpty(t, f.Key, "field %q", f.Label)
		}
	}
}
