package preset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"modlist-builder/core/modlist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const armaPreset = `<?xml version="1.0" encoding="utf-8"?>
<html>
  <!--Created by Arma 3 Launcher: https://arma3.com-->
  <head>
    <meta name="arma:Type" content="preset" />
    <meta name="arma:PresetName" content="Weekend Op" />
    <meta name="generator" content="Arma 3 Launcher - https://arma3.com" />
    <title>Arma 3</title>
  </head>
  <body>
    <h1>Arma 3  - Preset <strong>Weekend Op</strong></h1>
    <div class="mod-list">
      <table>
        <tr data-type="ModContainer">
          <td data-type="DisplayName">CBA_A3</td>
          <td><span class="from-steam">Steam</span></td>
          <td><a href="https://steamcommunity.com/sharedfiles/filedetails/?id=450814997" data-type="Link">https://steamcommunity.com/sharedfiles/filedetails/?id=450814997</a></td>
        </tr>
        <tr data-type="ModContainer">
          <td data-type="DisplayName">ace</td>
          <td><span class="from-steam">Steam</span></td>
          <td><a href=" http://steamcommunity.com/sharedfiles/filedetails/?id=463939057 " data-type="Link">link</a></td>
        </tr>
      </table>
    </div>
  </body>
</html>`

const dayzPreset = `<html>
  <head>
    <meta name="dayz:Type" content="list" />
    <meta name="generator" content="DayZ Launcher - https://dayz.com" />
  </head>
  <body>
    <div class="mod-list">
      <table>
        <tr data-type="ModContainer">
          <td data-type="DisplayName">CF</td>
          <td><a href="https://steamcommunity.com/sharedfiles/filedetails/?id=1559212036" data-type="Link">CF</a></td>
        </tr>
      </table>
    </div>
  </body>
</html>`

func rowsDocument(head, rows string) string {
	return `<html><head>` + head + `</head><body><div class="mod-list"><table>` + rows + `</table></div></body></html>`
}

func TestParse_Arma(t *testing.T) {
	doc, err := Parse(strings.NewReader(armaPreset), Options{})
	require.NoError(t, err)

	assert.Equal(t, modlist.FamilyArma, doc.Family)
	assert.Equal(t, "Weekend Op", doc.Name)
	assert.Equal(t, []modlist.PresetEntry{
		{DisplayName: "CBA_A3", ID: 450814997},
		{DisplayName: "ace", ID: 463939057},
	}, doc.Entries)
}

func TestParse_DayZ(t *testing.T) {
	doc, err := Parse(strings.NewReader(dayzPreset), Options{})
	require.NoError(t, err)

	assert.Equal(t, modlist.FamilyDayZ, doc.Family)
	assert.Empty(t, doc.Name)
	assert.Equal(t, []modlist.PresetEntry{{DisplayName: "CF", ID: 1559212036}}, doc.Entries)
}

func TestParse_Failures(t *testing.T) {
	const head = `<meta name="arma:Type" content="preset" />`
	const goodRow = `<tr data-type="ModContainer"><td data-type="DisplayName">A</td><td><a data-type="Link" href="https://steamcommunity.com/sharedfiles/filedetails/?id=1">x</a></td></tr>`

	tests := []struct {
		name      string
		document  string
		wantKind  modlist.ReasonKind
		wantIndex int
	}{
		{
			name:     "NoRows",
			document: rowsDocument(head, ""),
			wantKind: modlist.ReasonNoMatches,
		},
		{
			name:      "MissingName",
			document:  rowsDocument(head, goodRow+`<tr data-type="ModContainer"><td><a data-type="Link" href="https://steamcommunity.com/sharedfiles/filedetails/?id=2">x</a></td></tr>`),
			wantKind:  modlist.ReasonDisplayNameSelector,
			wantIndex: 1,
		},
		{
			name:      "EmptyName",
			document:  rowsDocument(head, `<tr data-type="ModContainer"><td data-type="DisplayName"></td><td><a data-type="Link" href="https://steamcommunity.com/sharedfiles/filedetails/?id=2">x</a></td></tr>`),
			wantKind:  modlist.ReasonDisplayNameSelector,
			wantIndex: 0,
		},
		{
			name:      "MissingLink",
			document:  rowsDocument(head, goodRow+goodRow+`<tr data-type="ModContainer"><td data-type="DisplayName">C</td></tr>`),
			wantKind:  modlist.ReasonLinkSelector,
			wantIndex: 2,
		},
		{
			name:      "ForeignLink",
			document:  rowsDocument(head, `<tr data-type="ModContainer"><td data-type="DisplayName">C</td><td><a data-type="Link" href="https://example.com/?id=3">x</a></td></tr>`),
			wantKind:  modlist.ReasonLinkSelector,
			wantIndex: 0,
		},
		{
			name:      "NonNumericID",
			document:  rowsDocument(head, `<tr data-type="ModContainer"><td data-type="DisplayName">C</td><td><a data-type="Link" href="https://steamcommunity.com/sharedfiles/filedetails/?id=abc">x</a></td></tr>`),
			wantKind:  modlist.ReasonLinkSelector,
			wantIndex: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(strings.NewReader(tt.document), Options{})
			assert.Nil(t, doc)

			var parseErr *modlist.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, modlist.SourcePreset, parseErr.Source)

			var reason *modlist.PresetReason
			require.ErrorAs(t, err, &reason)
			assert.Equal(t, tt.wantKind, reason.Kind)
			assert.Equal(t, tt.wantIndex, reason.Index)
		})
	}
}

func TestParse_FamilyDetection(t *testing.T) {
	const row = `<tr data-type="ModContainer"><td data-type="DisplayName">A</td><td><a data-type="Link" href="https://steamcommunity.com/sharedfiles/filedetails/?id=1">x</a></td></tr>`

	t.Run("Unknown", func(t *testing.T) {
		_, err := Parse(strings.NewReader(rowsDocument("", row)), Options{})
		assert.ErrorIs(t, err, modlist.ErrUnknownFamily)
	})

	t.Run("Override", func(t *testing.T) {
		doc, err := Parse(strings.NewReader(rowsDocument("", row)), Options{Family: modlist.FamilyDayZ})
		require.NoError(t, err)
		assert.Equal(t, modlist.FamilyDayZ, doc.Family)
	})

	t.Run("OverrideWinsOverDetection", func(t *testing.T) {
		doc, err := Parse(strings.NewReader(armaPreset), Options{Family: modlist.FamilyDayZ})
		require.NoError(t, err)
		assert.Equal(t, modlist.FamilyDayZ, doc.Family)
	})

	t.Run("InvalidOverride", func(t *testing.T) {
		_, err := Parse(strings.NewReader(armaPreset), Options{Family: "reforger"})
		assert.ErrorIs(t, err, modlist.ErrUnknownFamily)
	})
}

func TestParseFile(t *testing.T) {
	t.Run("NoPath", func(t *testing.T) {
		_, err := ParseFile("", Options{})
		assert.ErrorIs(t, err, modlist.ErrNoSourceProvided)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := ParseFile(filepath.Join(t.TempDir(), "missing.html"), Options{})
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("Valid", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "preset.html")
		require.NoError(t, os.WriteFile(path, []byte(armaPreset), 0o644))

		doc, err := ParseFile(path, Options{})
		require.NoError(t, err)
		assert.Len(t, doc.Entries, 2)
	})
}

func TestWorkshopID(t *testing.T) {
	tests := []struct {
		link   string
		want   uint64
		wantOK bool
	}{
		{"https://steamcommunity.com/sharedfiles/filedetails/?id=450814997", 450814997, true},
		{"http://steamcommunity.com/sharedfiles/filedetails/?id=1", 1, true},
		{"  https://steamcommunity.com/sharedfiles/filedetails/?id=7\n", 7, true},
		{"https://steamcommunity.com/sharedfiles/filedetails/?id=", 0, false},
		{"https://steamcommunity.com/sharedfiles/filedetails/?id=-1", 0, false},
		{"https://steamcommunity.com/workshop/filedetails/?id=1", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			got, ok := workshopID(tt.link)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
