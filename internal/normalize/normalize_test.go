package normalize

import "testing"

func TestFlatten_RemovesScriptAndStripsTags(t *testing.T) {
	got := Flatten("<script>x</script><b>1,234</b> hits")
	if got != "1,234 hits" {
		t.Fatalf("expected %q, got %q", "1,234 hits", got)
	}
}

func TestFlatten_RemovesStyleCaseInsensitiveMultiline(t *testing.T) {
	in := "<STYLE type=\"text/css\">\n.counter { color: red; }\n</STYLE><span>5</span> views"
	got := Flatten(in)
	if got != "5 views" {
		t.Fatalf("expected %q, got %q", "5 views", got)
	}
}

func TestFlatten_CollapsesWhitespace(t *testing.T) {
	in := "<div>\n  12\n\n views\t</div>"
	got := Flatten(in)
	if got != "12 views" {
		t.Fatalf("expected %q, got %q", "12 views", got)
	}
}

func TestFlatten_MalformedMarkup(t *testing.T) {
	got := Flatten("<b>7 hits")
	if got != "7 hits" {
		t.Fatalf("expected %q, got %q", "7 hits", got)
	}
}

func TestFlatten_Empty(t *testing.T) {
	if got := Flatten(""); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if got := Flatten("<script>only()</script>"); got != "" {
		t.Fatalf("expected empty string for script-only fragment, got %q", got)
	}
}
