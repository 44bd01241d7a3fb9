package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFamiliesCommand(t *testing.T) {
	out, err := run(t, "", "families")
	require.NoError(t, err)
	assert.Contains(t, out, "weapon_details")
	assert.Contains(t, out, "discriminator: gizmo.type > gizmo_type > type")
	assert.Contains(t, out, "Speargun")
}

func TestResolveCommand_Stdin(t *testing.T) {
	doc := `{"type":"Weapon","details":{"type":"rifle","damage_type":"Physical"}}`
	out, err := run(t, doc, "resolve", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "[0] item: *gw2.Weapon")
	assert.Contains(t, out, `details -> weapon_details: *gw2.Rifle (tag "rifle -> Rifle", matched)`)
}

func TestResolveCommand_SelectAndDump(t *testing.T) {
	doc := `{"page":{"items":[{"type":"Key","id":1},{"type":"Glider","id":2}]}}`
	out, err := run(t, doc, "resolve", "--select", "page.items", "--dump")
	require.NoError(t, err)
	assert.Contains(t, out, "[0] item: *gw2.Key")
	assert.Contains(t, out, "[1] item: *gw2.UnknownItem")
	assert.Contains(t, out, "note: discriminator_unknown at /type")
	assert.Contains(t, out, `RawType: (string) (len=6) "Glider"`)

	_, err = run(t, doc, "resolve", "--select", "page.missing")
	assert.Error(t, err)
}

func TestResolveCommand_DetailFamily(t *testing.T) {
	out, err := run(t, `{"tool_type":"Salvage","charges":3}`, "resolve", "--family", "tool_details")
	require.NoError(t, err)
	assert.Contains(t, out, "tool_details: *gw2.SalvageKit")

	_, err = run(t, `{}`, "resolve", "--family", "mount")
	assert.Error(t, err)
}

func TestResolveCommand_DuplicateKeyPolicy(t *testing.T) {
	t.Setenv("POLYJSON_DUPLICATE_KEYS", "error")
	_, err := run(t, `{"type":"Key","type":"Relic"}`, "resolve")
	assert.Error(t, err)

	t.Setenv("POLYJSON_DUPLICATE_KEYS", "sometimes")
	_, err = run(t, `{"type":"Key"}`, "resolve")
	assert.Error(t, err)
}

func TestFetchCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1,2", r.URL.Query().Get("ids"))
		_, _ = w.Write([]byte(`[{"id":1,"name":"Copper Ore","type":"CraftingMaterial"},{"id":2,"name":"Bolt","type":"Weapon","details":{"type":"Sword"}}]`))
	}))
	defer srv.Close()
	t.Setenv("GW2_API_BASE_URL", srv.URL)

	out, err := run(t, "", "fetch", "--ids", "1,2")
	require.NoError(t, err)
	assert.Contains(t, out, "1\t*gw2.CraftingMaterial\tCopper Ore")
	assert.Contains(t, out, "2\t*gw2.Weapon\tBolt")

	_, err = run(t, "", "fetch")
	assert.Error(t, err)
}

func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("warn", "json", &buf)
	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}
