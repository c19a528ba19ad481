package validate

import "testing"

func TestEmail(t *testing.T) {
	if got, okE := Email("  A@X.Com "); !okE || got != "a@x.com" {
		t.Fatalf("want normalized a@x.com, got %q ok=%v", got, okE)
	}
	for _, bad := range []string{"", "nope", "a@b", "@x.com", "a b@x.com"} {
		if _, okE := Email(bad); okE {
			t.Fatalf("%q should be rejected", bad)
		}
	}
}

func TestPassword(t *testing.T) {
	if Password("short") {
		t.Fatal("5 chars should fail")
	}
	if !Password("secret1") {
		t.Fatal("7 chars should pass")
	}
}

func TestRatingAndDiscount(t *testing.T) {
	for _, n := range []int{1, 3, 5} {
		if !Rating(n) {
			t.Fatalf("rating %d should pass", n)
		}
	}
	for _, n := range []int{0, 6, -1} {
		if Rating(n) {
			t.Fatalf("rating %d should fail", n)
		}
	}
	if !Discount(0) || !Discount(100) || Discount(-1) || Discount(101) {
		t.Fatal("discount bounds are 0..100")
	}
}

func TestText(t *testing.T) {
	got, okT := Text("  hello  ", 10)
	if !okT || got != "hello" {
		t.Fatalf("want trimmed hello, got %q", got)
	}
	if _, okT := Text("toolongtext", 5); okT {
		t.Fatal("over-limit text should fail")
	}
}

func TestOneOf(t *testing.T) {
	cats := []string{"Blankets", "Toys"}
	if !OneOf("Toys", cats) {
		t.Fatal("Toys should match")
	}
	if OneOf("toys", cats) {
		t.Fatal("match is case-sensitive")
	}
}

func TestID(t *testing.T) {
	if _, okID := ID("8f14e45f-ceea-467f-9cff-abc123def456"); !okID {
		t.Fatal("uuid-shaped ids should pass")
	}
	if _, okID := ID("../etc/passwd"); okID {
		t.Fatal("path-shaped ids should fail")
	}
}
