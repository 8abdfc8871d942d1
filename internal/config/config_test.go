package config

import (
	"strings"
	"testing"
)

func TestFillDefaults(t *testing.T) {
	var c Config
	c.FillDefaults()

	if c.App.LogLevel != "info" {
		t.Errorf("log level default: got %q", c.App.LogLevel)
	}
	if c.LunarCrush.BaseURL != "https://lunarcrush.com/api4/public" {
		t.Errorf("base URL default: got %q", c.LunarCrush.BaseURL)
	}
	if c.LunarCrush.Timeout != "15s" {
		t.Errorf("timeout default: got %q", c.LunarCrush.Timeout)
	}
	if c.Insight.Provider != "gemini" {
		t.Errorf("provider default: got %q", c.Insight.Provider)
	}
	if c.Insight.Gemini.Model != "gemini-2.0-flash" {
		t.Errorf("gemini model default: got %q", c.Insight.Gemini.Model)
	}
	if len(c.Trends.IgnoredSymbols) != 5 {
		t.Errorf("ignored symbols default: got %v", c.Trends.IgnoredSymbols)
	}
}

func TestFillDefaultsKeepsExplicitValues(t *testing.T) {
	c := Config{}
	c.LunarCrush.BaseURL = "http://localhost:9999"
	c.Trends.IgnoredSymbols = []string{"DOGE"}
	c.FillDefaults()

	if c.LunarCrush.BaseURL != "http://localhost:9999" {
		t.Errorf("explicit base URL overridden: %q", c.LunarCrush.BaseURL)
	}
	if len(c.Trends.IgnoredSymbols) != 1 || c.Trends.IgnoredSymbols[0] != "DOGE" {
		t.Errorf("explicit ignored symbols overridden: %v", c.Trends.IgnoredSymbols)
	}
}

func TestMask(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"short", "*****"},
		{"exactly10!", "**********"},
		{"abcde0123456789vwxyz", "abcde...vwxyz"},
	}
	for _, tc := range cases {
		if got := Mask(tc.in); got != tc.want {
			t.Errorf("Mask(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMaskNeverLeaksMiddle(t *testing.T) {
	secret := "abcdeSECRETMIDDLEvwxyz"
	got := Mask(secret)
	if strings.Contains(got, "SECRETMIDDLE") {
		t.Errorf("masked value leaks middle: %q", got)
	}
}

func TestRedacted(t *testing.T) {
	c := Config{}
	c.LunarCrush.APIKey = "abcde0123456789vwxyz"
	c.Insight.Gemini.APIKey = "gmkey"
	c.Insight.OpenAI.APIKey = ""

	r := c.Redacted()
	if r.LunarCrush.APIKey != "abcde...vwxyz" {
		t.Errorf("lunarcrush key not masked: %q", r.LunarCrush.APIKey)
	}
	if r.Insight.Gemini.APIKey != "*****" {
		t.Errorf("gemini key not masked: %q", r.Insight.Gemini.APIKey)
	}
	if r.Insight.OpenAI.APIKey != "" {
		t.Errorf("empty key should stay empty: %q", r.Insight.OpenAI.APIKey)
	}
	// original untouched
	if c.LunarCrush.APIKey != "abcde0123456789vwxyz" {
		t.Errorf("Redacted mutated receiver: %q", c.LunarCrush.APIKey)
	}
}
