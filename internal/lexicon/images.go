package lexicon

import (
	"net/url"
	"strings"
)

// fallbackImage is the generic illustration for words without a curated
// picture. The word is appended as a cache-busting parameter so each word
// gets a stable, distinct URL.
const fallbackImage = "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=300&h=200&fit=crop&q=80&auto=format&s="

// ImageTable maps lowercase words to illustration URLs.
type ImageTable map[string]string

// Lookup returns the curated image for word, or the deterministic fallback.
func (t ImageTable) Lookup(word string) string {
	key := strings.ToLower(word)
	if u, ok := t[key]; ok {
		return u
	}
	return FallbackImage(key)
}

// Has reports whether word has a curated image.
func (t ImageTable) Has(word string) bool {
	_, ok := t[strings.ToLower(word)]
	return ok
}

// FallbackImage is the placeholder illustration keyed by word.
func FallbackImage(word string) string {
	return fallbackImage + url.QueryEscape(word)
}

// DefaultImages returns a copy of the curated table.
func DefaultImages() ImageTable {
	out := make(ImageTable, len(curatedImages))
	for k, v := range curatedImages {
		out[k] = v
	}
	return out
}

var curatedImages = ImageTable{
	"stars":        "https://images.unsplash.com/photo-1446776653964-20c1d3a81b06?w=300&h=200&fit=crop",
	"tonight":      "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=300&h=200&fit=crop",
	"fire":         "https://images.unsplash.com/photo-1525385133512-2f3bdd039054?w=300&h=200&fit=crop",
	"light":        "https://images.unsplash.com/photo-1513475382585-d06e58bcb0e0?w=300&h=200&fit=crop",
	"bring":        "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=300&h=200&fit=crop",
	"night":        "https://images.unsplash.com/photo-1519904981063-b0cf448d479e?w=300&h=200&fit=crop",
	"shoes":        "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=300&h=200&fit=crop",
	"morning":      "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=300&h=200&fit=crop",
	"milk":         "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=300&h=200&fit=crop",
	"rock":         "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=300&h=200&fit=crop",
	"roll":         "https://images.unsplash.com/photo-1514525253161-7a46d19cd819?w=300&h=200&fit=crop",
	"king":         "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=300&h=200&fit=crop",
	"kong":         "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=300&h=200&fit=crop",
	"kick":         "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=200&fit=crop",
	"drum":         "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=300&h=200&fit=crop",
	"rolling":      "https://images.unsplash.com/photo-1516981442399-5e617b6b9f64?w=300&h=200&fit=crop",
	"stone":        "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=300&h=200&fit=crop",
	"sing":         "https://images.unsplash.com/photo-1516450360452-9312f5e86fc7?w=300&h=200&fit=crop",
	"song":         "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=300&h=200&fit=crop",
	"walking":      "https://images.unsplash.com/photo-1544966503-7cc5ac882d5c?w=300&h=200&fit=crop",
	"home":         "https://images.unsplash.com/photo-1570129477492-45c003edd2be?w=300&h=200&fit=crop",
	"jump":         "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=200&fit=crop",
	"top":          "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=300&h=200&fit=crop",
	"phone":        "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=300&h=200&fit=crop",
	"ice":          "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=300&h=200&fit=crop",
	"tea":          "https://images.unsplash.com/photo-1544787219-7f47ccb76574?w=300&h=200&fit=crop",
	"game":         "https://images.unsplash.com/photo-1511512578047-dfb367046420?w=300&h=200&fit=crop",
	"ping":         "https://images.unsplash.com/photo-1578662015703-4fa99bd5ff18?w=300&h=200&fit=crop",
	"pong":         "https://images.unsplash.com/photo-1578662015703-4fa99bd5ff18?w=300&h=200&fit=crop",
	"heavy":        "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=200&fit=crop",
	"bass":         "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=300&h=200&fit=crop",
	"boom":         "https://images.unsplash.com/photo-1525385133512-2f3bdd039054?w=300&h=200&fit=crop",
	"ready":        "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=300&h=200&fit=crop",
	"life":         "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=300&h=200&fit=crop",
	"sweet":        "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=300&h=200&fit=crop",
	"honey":        "https://images.unsplash.com/photo-1587049352851-8d4e89133924?w=300&h=200&fit=crop",
	"beat":         "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=300&h=200&fit=crop",
	"money":        "https://images.unsplash.com/photo-1554768804-50c1e2b50a6e?w=300&h=200&fit=crop",
	"disco":        "https://images.unsplash.com/photo-1516981442399-5e617b6b9f64?w=300&h=200&fit=crop",
	"overload":     "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=300&h=200&fit=crop",
	"diamond":      "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=300&h=200&fit=crop",
	"glow":         "https://images.unsplash.com/photo-1519904981063-b0cf448d479e?w=300&h=200&fit=crop",
	"shining":      "https://images.unsplash.com/photo-1519904981063-b0cf448d479e?w=300&h=200&fit=crop",
	"city":         "https://images.unsplash.com/photo-1514565131-fce0801e5785?w=300&h=200&fit=crop",
	"funk":         "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=300&h=200&fit=crop",
	"soul":         "https://images.unsplash.com/photo-1516450360452-9312f5e86fc7?w=300&h=200&fit=crop",
	"dynamite":     "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=300&h=200&fit=crop",
	"club":         "https://images.unsplash.com/photo-1516981442399-5e617b6b9f64?w=300&h=200&fit=crop",
	"bar":          "https://images.unsplash.com/photo-1514362545857-3bc16c4c7d1b?w=300&h=200&fit=crop",
	"lover":        "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=300&h=200&fit=crop",
	"friends":      "https://images.unsplash.com/photo-1529156069898-49953e39b3ac?w=300&h=200&fit=crop",
	"shots":        "https://images.unsplash.com/photo-1514362545857-3bc16c4c7d1b?w=300&h=200&fit=crop",
	"drinking":     "https://images.unsplash.com/photo-1514362545857-3bc16c4c7d1b?w=300&h=200&fit=crop",
	"conversation": "https://images.unsplash.com/photo-1529156069898-49953e39b3ac?w=300&h=200&fit=crop",
	"hand":         "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=300&h=200&fit=crop",
	"jukebox":      "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=300&h=200&fit=crop",
	"dance":        "https://images.unsplash.com/photo-1516981442399-5e617b6b9f64?w=300&h=200&fit=crop",
	"love":         "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=300&h=200&fit=crop",
	"heart":        "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=300&h=200&fit=crop",
	"magnet":       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=300&h=200&fit=crop",
	"body":         "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=200&fit=crop",
	"shape":        "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=200&fit=crop",
	"white":        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=300&h=200&fit=crop",
	"shirt":        "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=300&h=200&fit=crop",
	"red":          "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=300&h=200&fit=crop",
	"blood":        "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=300&h=200&fit=crop",
	"nose":         "https://images.unsplash.com/photo-1516981442399-5e617b6b9f64?w=300&h=200&fit=crop",
	"sleeping":     "https://images.unsplash.com/photo-1541781774459-bb2af2f05b55?w=300&h=200&fit=crop",
	"toes":         "https://images.unsplash.com/photo-1544966503-7cc5ac882d5c?w=300&h=200&fit=crop",
	"criminal":     "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=200&fit=crop",
	"bruises":      "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=300&h=200&fit=crop",
	"knees":        "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=200&fit=crop",
	"tough":        "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=200&fit=crop",
	"guy":          "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300&h=200&fit=crop",
	"rough":        "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=200&fit=crop",
	"chest":        "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=200&fit=crop",
	"bad":          "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=200&fit=crop",
	"type":         "https://images.unsplash.com/photo-1516981442399-5e617b6b9f64?w=300&h=200&fit=crop",
	"mama":         "https://images.unsplash.com/photo-1529156069898-49953e39b3ac?w=300&h=200&fit=crop",
	"sad":          "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=300&h=200&fit=crop",
	"girlfriend":   "https://images.unsplash.com/photo-1529156069898-49953e39b3ac?w=300&h=200&fit=crop",
	"mad":          "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=200&fit=crop",
	"seduce":       "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=300&h=200&fit=crop",
	"dad":          "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300&h=200&fit=crop",
	"watch":        "https://images.unsplash.com/photo-1524805444758-089113d48a6d?w=300&h=200&fit=crop",
	"make":         "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=300&h=200&fit=crop",
	"feel":         "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=300&h=200&fit=crop",
	"know":         "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300&h=200&fit=crop",
	"time":         "https://images.unsplash.com/photo-1524805444758-089113d48a6d?w=300&h=200&fit=crop",
	"want":         "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=300&h=200&fit=crop",
	"come":         "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=300&h=200&fit=crop",
	"go":           "https://images.unsplash.com/photo-1544966503-7cc5ac882d5c?w=300&h=200&fit=crop",
	"get":          "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=300&h=200&fit=crop",
	"see":          "https://images.unsplash.com/photo-1516981442399-5e617b6b9f64?w=300&h=200&fit=crop",
	"look":         "https://images.unsplash.com/photo-1516981442399-5e617b6b9f64?w=300&h=200&fit=crop",
	"like":         "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=300&h=200&fit=crop",
	"take":         "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=300&h=200&fit=crop",
	"give":         "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=300&h=200&fit=crop",
	"think":        "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300&h=200&fit=crop",
	"say":          "https://images.unsplash.com/photo-1516450360452-9312f5e86fc7?w=300&h=200&fit=crop",
	"tell":         "https://images.unsplash.com/photo-1516450360452-9312f5e86fc7?w=300&h=200&fit=crop",
	"call":         "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=300&h=200&fit=crop",
	"work":         "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300&h=200&fit=crop",
	"try":          "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=200&fit=crop",
	"ask":          "https://images.unsplash.com/photo-1529156069898-49953e39b3ac?w=300&h=200&fit=crop",
	"turn":         "https://images.unsplash.com/photo-1544966503-7cc5ac882d5c?w=300&h=200&fit=crop",
	"move":         "https://images.unsplash.com/photo-1544966503-7cc5ac882d5c?w=300&h=200&fit=crop",
	"play":         "https://images.unsplash.com/photo-1511512578047-dfb367046420?w=300&h=200&fit=crop",
	"run":          "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=200&fit=crop",
	"walk":         "https://images.unsplash.com/photo-1544966503-7cc5ac882d5c?w=300&h=200&fit=crop",
	"sit":          "https://images.unsplash.com/photo-1529156069898-49953e39b3ac?w=300&h=200&fit=crop",
	"stand":        "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=200&fit=crop",
	"open":         "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=300&h=200&fit=crop",
	"close":        "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=300&h=200&fit=crop",
	"find":         "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300&h=200&fit=crop",
	"keep":         "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=300&h=200&fit=crop",
	"let":          "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=300&h=200&fit=crop",
	"put":          "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=300&h=200&fit=crop",
	"show":         "https://images.unsplash.com/photo-1516981442399-5e617b6b9f64?w=300&h=200&fit=crop",
	"hear":         "https://images.unsplash.com/photo-1516450360452-9312f5e86fc7?w=300&h=200&fit=crop",
	"listen":       "https://images.unsplash.com/photo-1516450360452-9312f5e86fc7?w=300&h=200&fit=crop",
	"help":         "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=300&h=200&fit=crop",
	"stop":         "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=200&fit=crop",
	"start":        "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=300&h=200&fit=crop",
	"leave":        "https://images.unsplash.com/photo-1544966503-7cc5ac882d5c?w=300&h=200&fit=crop",
	"follow":       "https://images.unsplash.com/photo-1544966503-7cc5ac882d5c?w=300&h=200&fit=crop",
	"lead":         "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300&h=200&fit=crop",
	"meet":         "https://images.unsplash.com/photo-1529156069898-49953e39b3ac?w=300&h=200&fit=crop",
	"speak":        "https://images.unsplash.com/photo-1516450360452-9312f5e86fc7?w=300&h=200&fit=crop",
	"read":         "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=300&h=200&fit=crop",
	"write":        "https://images.unsplash.com/photo-1455390582262-044cdead277a?w=300&h=200&fit=crop",
	"learn":        "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=300&h=200&fit=crop",
	"teach":        "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300&h=200&fit=crop",
	"study":        "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=300&h=200&fit=crop",
	"understand":   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300&h=200&fit=crop",
	"remember":     "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300&h=200&fit=crop",
	"forget":       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300&h=200&fit=crop",
	"believe":      "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=300&h=200&fit=crop",
	"hope":         "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=300&h=200&fit=crop",
	"wish":         "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=300&h=200&fit=crop",
	"dream":        "https://images.unsplash.com/photo-1541781774459-bb2af2f05b55?w=300&h=200&fit=crop",
	"sleep":        "https://images.unsplash.com/photo-1541781774459-bb2af2f05b55?w=300&h=200&fit=crop",
	"wake":         "https://images.unsplash.com/photo-1541781774459-bb2af2f05b55?w=300&h=200&fit=crop",
	"live":         "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=300&h=200&fit=crop",
	"die":          "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=300&h=200&fit=crop",
	"born":         "https://images.unsplash.com/photo-1529156069898-49953e39b3ac?w=300&h=200&fit=crop",
	"grow":         "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=300&h=200&fit=crop",
	"change":       "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=300&h=200&fit=crop",
	"happen":       "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=300&h=200&fit=crop",
	"seem":         "https://images.unsplash.com/photo-1516981442399-5e617b6b9f64?w=300&h=200&fit=crop",
	"become":       "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=300&h=200&fit=crop",
	"stay":         "https://images.unsplash.com/photo-1570129477492-45c003edd2be?w=300&h=200&fit=crop",
	"remain":       "https://images.unsplash.com/photo-1570129477492-45c003edd2be?w=300&h=200&fit=crop",
	"happy":        "https://images.unsplash.com/photo-1529156069898-49953e39b3ac?w=300&h=200&fit=crop",
	"smile":        "https://images.unsplash.com/photo-1529156069898-49953e39b3ac?w=300&h=200&fit=crop",
	"laugh":        "https://images.unsplash.com/photo-1529156069898-49953e39b3ac?w=300&h=200&fit=crop",
	"cry":          "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=300&h=200&fit=crop",
	"angry":        "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=200&fit=crop",
	"afraid":       "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=200&fit=crop",
	"scared":       "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=200&fit=crop",
	"worried":      "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=300&h=200&fit=crop",
	"excited":      "https://images.unsplash.com/photo-1529156069898-49953e39b3ac?w=300&h=200&fit=crop",
	"surprised":    "https://images.unsplash.com/photo-1529156069898-49953e39b3ac?w=300&h=200&fit=crop",
	"confused":     "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300&h=200&fit=crop",
	"lonely":       "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=300&h=200&fit=crop",
	"nervous":      "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=200&fit=crop",
	"proud":        "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=200&fit=crop",
	"embarrassed":  "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=300&h=200&fit=crop",
	"jealous":      "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=200&fit=crop",
	"sun":          "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=300&h=200&fit=crop",
	"moon":         "https://images.unsplash.com/photo-1446776653964-20c1d3a81b06?w=300&h=200&fit=crop",
	"sky":          "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=300&h=200&fit=crop",
	"cloud":        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=300&h=200&fit=crop",
	"rain":         "https://images.unsplash.com/photo-1515694346937-94d85e41e6f0?w=300&h=200&fit=crop",
	"snow":         "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=300&h=200&fit=crop",
	"wind":         "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=300&h=200&fit=crop",
	"storm":        "https://images.unsplash.com/photo-1515694346937-94d85e41e6f0?w=300&h=200&fit=crop",
	"lightning":    "https://images.unsplash.com/photo-1515694346937-94d85e41e6f0?w=300&h=200&fit=crop",
	"thunder":      "https://images.unsplash.com/photo-1515694346937-94d85e41e6f0?w=300&h=200&fit=crop",
	"flower":       "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=300&h=200&fit=crop",
	"tree":         "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=300&h=200&fit=crop",
	"grass":        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=300&h=200&fit=crop",
	"leaf":         "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=300&h=200&fit=crop",
	"mountain":     "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=300&h=200&fit=crop",
	"ocean":        "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=300&h=200&fit=crop",
	"sea":          "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=300&h=200&fit=crop",
	"water":        "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=300&h=200&fit=crop",
	"river":        "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=300&h=200&fit=crop",
	"lake":         "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=300&h=200&fit=crop",
	"beach":        "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=300&h=200&fit=crop",
	"sand":         "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=300&h=200&fit=crop",
	"wave":         "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=300&h=200&fit=crop",
	"earth":        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=300&h=200&fit=crop",
	"world":        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=300&h=200&fit=crop",
	"black":        "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=200&fit=crop",
	"blue":         "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=300&h=200&fit=crop",
	"green":        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=300&h=200&fit=crop",
	"yellow":       "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=300&h=200&fit=crop",
	"orange":       "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=300&h=200&fit=crop",
	"purple":       "https://images.unsplash.com/photo-1516981442399-5e617b6b9f64?w=300&h=200&fit=crop",
	"pink":         "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=300&h=200&fit=crop",
	"brown":        "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=300&h=200&fit=crop",
	"gray":         "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=300&h=200&fit=crop",
	"grey":         "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=300&h=200&fit=crop",
	"one":          "https://images.unsplash.com/photo-1554768804-50c1e2b50a6e?w=300&h=200&fit=crop",
	"two":          "https://images.unsplash.com/photo-1554768804-50c1e2b50a6e?w=300&h=200&fit=crop",
	"three":        "https://images.unsplash.com/photo-1554768804-50c1e2b50a6e?w=300&h=200&fit=crop",
	"four":         "https://images.unsplash.com/photo-1554768804-50c1e2b50a6e?w=300&h=200&fit=crop",
	"five":         "https://images.unsplash.com/photo-1554768804-50c1e2b50a6e?w=300&h=200&fit=crop",
	"six":          "https://images.unsplash.com/photo-1554768804-50c1e2b50a6e?w=300&h=200&fit=crop",
	"seven":        "https://images.unsplash.com/photo-1554768804-50c1e2b50a6e?w=300&h=200&fit=crop",
	"eight":        "https://images.unsplash.com/photo-1554768804-50c1e2b50a6e?w=300&h=200&fit=crop",
	"nine":         "https://images.unsplash.com/photo-1554768804-50c1e2b50a6e?w=300&h=200&fit=crop",
	"ten":          "https://images.unsplash.com/photo-1554768804-50c1e2b50a6e?w=300&h=200&fit=crop",
	"hello":        "https://images.unsplash.com/photo-1529156069898-49953e39b3ac?w=300&h=200&fit=crop",
	"goodbye":      "https://images.unsplash.com/photo-1544966503-7cc5ac882d5c?w=300&h=200&fit=crop",
	"yes":          "https://images.unsplash.com/photo-1529156069898-49953e39b3ac?w=300&h=200&fit=crop",
	"no":           "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=200&fit=crop",
	"please":       "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=300&h=200&fit=crop",
	"thank":        "https://images.unsplash.com/photo-1529156069898-49953e39b3ac?w=300&h=200&fit=crop",
	"sorry":        "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=300&h=200&fit=crop",
	"excuse":       "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=300&h=200&fit=crop",
}
