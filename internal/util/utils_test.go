package util

import (
	"reflect"
	"testing"
)

func TestParseCommaSeparatedTags_EmptyValues_ReturnsNil(t *testing.T) {
	got := ParseCommaSeparatedTags(nil)
	if got != nil {
		t.Fatalf("expected nil, got %#v", got)
	}
}

func TestParseCommaSeparatedTags_FirstElementEmpty_ReturnsNil(t *testing.T) {
	got := ParseCommaSeparatedTags([]string{""})
	if got != nil {
		t.Fatalf("expected nil, got %#v", got)
	}
}

func TestParseCommaSeparatedTags_IgnoresAdditionalElements(t *testing.T) {
	got := ParseCommaSeparatedTags([]string{"puppy,adolescent", "senior"})
	want := []string{"puppy", "adolescent"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestParseCommaSeparatedTags_SplitsAndTrims(t *testing.T) {
	got := ParseCommaSeparatedTags([]string{" puppy , adult,  senior "})
	want := []string{"puppy", "adult", "senior"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestParseCommaSeparatedTags_RemovesEmptyParts(t *testing.T) {
	got := ParseCommaSeparatedTags([]string{"barking,, ,anxiety, , ,recall,"})
	want := []string{"barking", "anxiety", "recall"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestParseCommaSeparatedTags_SingleValueNoComma(t *testing.T) {
	got := ParseCommaSeparatedTags([]string{"puppy"})
	want := []string{"puppy"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestSanitizePart_LowercasesAndUnderscores(t *testing.T) {
	if got := SanitizePart("Happy Paws K9"); got != "happy_paws_k9" {
		t.Fatalf("got %q", got)
	}
}

func TestSanitizePart_StripsSpecials(t *testing.T) {
	if got := SanitizePart("Bark & Ride!"); got != "bark__ride" {
		t.Fatalf("got %q", got)
	}
}

func TestSanitizePart_EmptyFallsBackToUnknown(t *testing.T) {
	if got := SanitizePart("  !!  "); got != "unknown" {
		t.Fatalf("got %q", got)
	}
}

func TestListingPhotoPrefix(t *testing.T) {
	got := ListingPhotoPrefix(42, "Happy Paws")
	if got != "listings/42_happy_paws" {
		t.Fatalf("got %q", got)
	}
}

func TestPublicGCSURL(t *testing.T) {
	got := PublicGCSURL("bkt", "listings/1_x/photo.jpg")
	want := "https://storage.googleapis.com/bkt/listings/1_x/photo.jpg"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
