package kanjipedia

import (
	"html/template"
	"strings"
)

// entryTmpl renders one self-contained block per entry: linked
// character with parenthesized old forms, readings grouped primary
// then extended, classification tags, the three-column component
// table, and related characters.
var entryTmpl = template.Must(template.New("entry").Parse(`<div class="kanjiEntry">
<h2><a href="{{.OriginRef}}">{{.Character}}</a>{{if .OldForms}}（{{range .OldForms}}{{.}}{{end}}）{{end}}</h2>
<p>音：{{.Onyomi}}{{if .OnyomiExt}}（外）{{.OnyomiExt}}{{end}}<br/>
訓：{{.Kunyomi}}{{if .KunyomiExt}}（外）{{.KunyomiExt}}{{end}}</p>
<p>{{.Types}}</p>
<table>
<tr><th>部首</th><th>意符</th><th>音符</th></tr>
<tr><td>{{.Radical}}</td><td>{{.Semantic}}</td><td>{{.Phonetic}}</td></tr>
</table>
{{if .Related}}<p>同部首：{{.Related}}</p>{{end}}
</div>`))

type entryView struct {
	Character  string
	OriginRef  string
	OldForms   []template.HTML
	Onyomi     string
	OnyomiExt  string
	Kunyomi    string
	KunyomiExt string
	Types      string
	Radical    template.HTML
	Semantic   template.HTML
	Phonetic   template.HTML
	Related    string
}

const displaySeparator = "・"

// RenderHTML produces the entry's self-contained markup block. All
// relative image references are rewritten to absolute form so the
// block renders outside the source site.
func (e *Entry) RenderHTML() (string, error) {
	v := entryView{
		Character:  e.Character,
		OriginRef:  e.OriginRef,
		Onyomi:     strings.Join(e.Onyomi.Members(), displaySeparator),
		OnyomiExt:  strings.Join(e.OnyomiExt.Members(), displaySeparator),
		Kunyomi:    strings.Join(e.Kunyomi.Members(), displaySeparator),
		KunyomiExt: strings.Join(e.KunyomiExt.Members(), displaySeparator),
		Types:      strings.Join(e.Classification.Members(), " "),
		Radical:    markupCell(e.Radical),
		Semantic:   markupCell(strings.Join(e.SemanticComponents.Members(), displaySeparator)),
		Phonetic:   markupCell(e.PhoneticComponent),
		Related:    strings.Join(e.RelatedKanji.Members(), displaySeparator),
	}
	for _, f := range e.OldForms.Members() {
		v.OldForms = append(v.OldForms, template.HTML(AbsoluteImageRefs(f)))
	}

	var b strings.Builder
	if err := entryTmpl.Execute(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}

// markupCell prepares a component value for a table cell: N/A when
// absent, absolute image references otherwise. Values may legitimately
// contain <img> markup extracted from the source page.
func markupCell(s string) template.HTML {
	if trim(s) == "" {
		return "N/A"
	}
	return template.HTML(AbsoluteImageRefs(s))
}

// AbsoluteImageRefs rewrites site-relative src attributes to absolute
// form against the kanjipedia root.
func AbsoluteImageRefs(s string) string {
	return strings.ReplaceAll(s, `src="/`, `src="`+BaseURL+`/`)
}
