package gw2_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/polyjson"
	"github.com/reoring/polyjson/gw2"
)

func TestWeapon_NestedDispatch(t *testing.T) {
	c := newCatalog(t)
	it, err := c.DecodeItem([]byte(`{"type":"Weapon","details":{"type":"Rifle","damage_type":"Physical"}}`))
	require.NoError(t, err)

	w, ok := it.(*gw2.Weapon)
	require.True(t, ok, "got %T", it)
	rifle, ok := w.Details.(*gw2.Rifle)
	require.True(t, ok, "got %T", w.Details)
	assert.Equal(t, gw2.DamagePhysical, rifle.DamageType)
}

func TestWeapon_SpeargunCasing(t *testing.T) {
	c := newCatalog(t)
	for _, tag := range []string{"Speargun", "speargun", "SpearGun", "SPEARGUN"} {
		t.Run(tag, func(t *testing.T) {
			res, err := c.WeaponDetails().ResolveWithOutcome(map[string]any{"type": tag})
			require.NoError(t, err)
			assert.IsType(t, &gw2.Speargun{}, res.Value)
			assert.Equal(t, "Speargun", res.Outcome.Tag.Canonical)
			assert.Equal(t, tag, res.Outcome.Tag.Raw)
		})
	}
}

func TestItem_UnknownTagPreserved(t *testing.T) {
	c := newCatalog(t)
	for _, tag := range []string{"Glider", "armour", "Weapon ", "42"} {
		it, err := c.DecodeItem([]byte(`{"type":"` + tag + `","id":7}`))
		require.NoError(t, err)
		u, ok := it.(*gw2.UnknownItem)
		require.True(t, ok, "%q resolved to %T", tag, it)
		assert.Equal(t, tag, u.RawType)
		assert.Equal(t, 7, u.ID)
	}

	it, err := c.DecodeItem([]byte(`{"type":"Weapon","details":{"type":"Scythe","min_power":5}}`))
	require.NoError(t, err)
	d, ok := it.(*gw2.Weapon).Details.(*gw2.UnknownWeaponDetails)
	require.True(t, ok)
	assert.Equal(t, "Scythe", d.RawType)
	assert.Equal(t, 5, d.MinPower)
}

func TestItem_AnyTagShapeIsAccepted(t *testing.T) {
	c := newCatalog(t)
	docs := []string{
		`{}`,
		`{"type":null}`,
		`{"type":""}`,
		`{"type":12}`,
		`{"type":false}`,
		`{"type":{"kind":"Armor"}}`,
		`{"type":["Armor"]}`,
		`{"type":"Weapon","details":{"type":[]}}`,
		`{"type":"Weapon","details":[]}`,
		`{"type":"Gizmo","details":{"gizmo":"ContainerKey"}}`,
		`{"type":"Gizmo","details":{"gizmo":{"type":{"x":1}},"gizmo_type":"Default"}}`,
		`{"type":"Trinket","details":{"type":{}}}`,
		`{"type":"Trinket","details":{"type":{"x":1}}}`,
		`{"type":"Trinket","details":{"type":7}}`,
		`{"type":"Trinket","details":{"type":[]}}`,
		`{"type":"Trinket","details":{"type":["Ring"]}}`,
	}
	for _, js := range docs {
		assert.NotPanics(t, func() {
			it, err := c.DecodeItem([]byte(js))
			assert.NoError(t, err, js)
			assert.NotNil(t, it, js)
		}, js)
	}
}

func TestTrinket_OddTagsFallBack(t *testing.T) {
	c := newCatalog(t)
	cases := map[string]string{
		`{"type":"Trinket","id":1,"details":{"type":{"x":1},"infusion_slots":[]}}`: "",
		`{"type":"Trinket","id":1,"details":{"type":["Ring"]}}`:                     "",
		`{"type":"Trinket","id":1,"details":{"type":7}}`:                            "7",
		`{"type":"Trinket","id":1,"details":{"type":"Bracelet"}}`:                   "Bracelet",
	}
	for js, raw := range cases {
		it, err := c.DecodeItem([]byte(js))
		require.NoError(t, err, js)
		tr, ok := it.(*gw2.Trinket)
		require.True(t, ok, js)
		assert.Equal(t, 1, tr.ID, js)
		d, ok := tr.Details.(*gw2.UnknownTrinketDetails)
		require.True(t, ok, js)
		assert.Equal(t, raw, d.RawType, js)
		assert.Equal(t, raw, d.Type, js)
	}
}

func TestItem_Idempotent(t *testing.T) {
	c := newCatalog(t)
	tree, err := polyjson.ParseBytes([]byte(`{"type":"Armor","id":3,"details":{"type":"Helm","weight_class":"Heavy"}}`))
	require.NoError(t, err)

	first, err := c.Items().Resolve(tree)
	require.NoError(t, err)
	second, err := c.Items().Resolve(tree)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	details := tree.(map[string]any)["details"].(map[string]any)
	assert.Equal(t, "Helm", details["type"], "input tree must not be modified")
}

func TestGizmo_TagLocations(t *testing.T) {
	c := newCatalog(t)
	cases := []struct {
		name    string
		details string
		want    any
	}{
		{"sub-object", `{"gizmo":{"type":"ContainerKey"},"gizmo_type":"Default"}`, &gw2.ContainerKey{}},
		{"flat prefixed", `{"gizmo_type":"RentableContractNpc","type":"Default"}`, &gw2.RentableContractNpc{}},
		{"plain", `{"type":"UnlimitedConsumable","vendor_ids":[1,2]}`, &gw2.UnlimitedConsumable{GizmoInfo: gw2.GizmoInfo{VendorIDs: []int{1, 2}}}},
		{"null sub-object tag", `{"gizmo":{"type":null},"gizmo_type":"Default"}`, &gw2.DefaultGizmo{}},
		{"sub-object with extra fields", `{"gizmo":{"type":"Default","guild_upgrade_id":9}}`, &gw2.DefaultGizmo{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			it, err := c.DecodeItem([]byte(`{"type":"Gizmo","details":` + tc.details + `}`))
			require.NoError(t, err)
			assert.Equal(t, tc.want, it.(*gw2.Gizmo).Details)
		})
	}
}

func TestTool_TagLocations(t *testing.T) {
	c := newCatalog(t)
	for _, details := range []string{
		`{"tool":{"type":"Salvage"},"charges":10}`,
		`{"tool_type":"salvage","charges":10}`,
		`{"type":"Salvage","charges":10}`,
	} {
		it, err := c.DecodeItem([]byte(`{"type":"Tool","details":` + details + `}`))
		require.NoError(t, err)
		assert.Equal(t, &gw2.SalvageKit{Charges: 10}, it.(*gw2.Tool).Details, details)
	}
}

func TestTrinket_KeepsType(t *testing.T) {
	c := newCatalog(t)
	it, err := c.DecodeItem([]byte(`{"type":"Trinket","details":{"type":"ring","infusion_slots":[]}}`))
	require.NoError(t, err)
	ring, ok := it.(*gw2.Trinket).Details.(*gw2.Ring)
	require.True(t, ok)
	assert.Equal(t, "ring", ring.Type)

	it, err = c.DecodeItem([]byte(`{"type":"Trinket","details":{"type":"Bracelet"}}`))
	require.NoError(t, err)
	u, ok := it.(*gw2.Trinket).Details.(*gw2.UnknownTrinketDetails)
	require.True(t, ok)
	assert.Equal(t, "Bracelet", u.RawType)
	assert.Equal(t, "Bracelet", u.Type)
}

func TestItem_RemarshalHasSingleTypeTag(t *testing.T) {
	c := newCatalog(t)
	docs := []string{
		`{"type":"Trinket","id":1,"details":{"type":"Amulet"}}`,
		`{"type":"Weapon","id":2,"details":{"type":"Rifle","damage_type":"Physical"}}`,
		`{"type":"Consumable","id":3,"details":{"type":"Food","duration_ms":1800000}}`,
		`{"type":"Gizmo","id":4,"details":{"gizmo":{"type":"Default"}}}`,
	}
	for _, js := range docs {
		it, err := c.DecodeItem([]byte(js))
		require.NoError(t, err)
		out, err := json.Marshal(it)
		require.NoError(t, err)
		assert.LessOrEqual(t, strings.Count(string(out), `"type"`), 1, string(out))

		var back map[string]any
		require.NoError(t, json.Unmarshal(out, &back))
		assert.NotContains(t, back, "type", "item level tag is consumed")
	}
}

func TestItem_EncodeUnsupported(t *testing.T) {
	c := newCatalog(t)
	_, err := c.Items().Encode(&gw2.Key{})
	assert.ErrorIs(t, err, polyjson.ErrEncodeUnsupported)
	_, err = c.Resolver().Marshal(&gw2.Key{})
	assert.ErrorIs(t, err, polyjson.ErrEncodeUnsupported)
}
