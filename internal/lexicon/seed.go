package lexicon

var seedEntries = []Entry{
	{
		Word:          "light",
		Pronunciation: "/laɪt/",
		Phonetic:      "laɪt",
		Meanings: []Meaning{
			{
				PartOfSpeech: "noun",
				Definitions: []Definition{
					{Text: "the natural agent that stimulates sight and makes things visible", Example: "the light of the sun", Synonyms: []string{"illumination", "brightness", "luminosity"}},
					{Text: "an expression in someone's eyes indicating a particular emotion or mood", Example: "a light of triumph in his eyes"},
				},
			},
			{
				PartOfSpeech: "verb",
				Definitions: []Definition{
					{Text: "provide with light or lighting; illuminate", Example: "the room was lit by a number of small lamps", Synonyms: []string{"illuminate", "brighten", "lighten"}},
				},
			},
		},
		Etymology: "Old English lēoht (noun and adjective), līhtan (verb), of Germanic origin",
	},
	{
		Word:          "fire",
		Pronunciation: "/ˈfaɪər/",
		Phonetic:      "ˈfaɪər",
		Meanings: []Meaning{
			{
				PartOfSpeech: "noun",
				Definitions: []Definition{
					{Text: "combustion or burning, in which substances combine chemically with oxygen from the air", Example: "his house was destroyed by fire", Synonyms: []string{"flames", "blaze", "conflagration"}},
				},
			},
		},
	},
	{
		Word:          "stars",
		Pronunciation: "/stɑːrz/",
		Phonetic:      "stɑːrz",
		Meanings: []Meaning{
			{
				PartOfSpeech: "noun",
				Definitions: []Definition{
					{Text: "a fixed luminous point in the night sky that is a large, remote incandescent body like the sun", Example: "we could see the stars twinkling in the clear night sky", Synonyms: []string{"celestial body", "heavenly body"}},
				},
			},
		},
	},
	{
		Word:          "dynamite",
		Pronunciation: "/ˈdaɪnəmaɪt/",
		Phonetic:      "ˈdaɪnəmaɪt",
		Meanings: []Meaning{
			{
				PartOfSpeech: "noun",
				Definitions: []Definition{
					{Text: "a high explosive consisting of nitroglycerin mixed with an absorbent material", Example: "sticks of dynamite", Synonyms: []string{"explosive", "TNT"}},
					{Text: "(informal) something likely to cause trouble or controversy", Example: "the story was political dynamite"},
				},
			},
		},
	},
	{
		Word:          "diamond",
		Pronunciation: "/ˈdaɪəmənd/",
		Phonetic:      "ˈdaɪəmənd",
		Meanings: []Meaning{
			{
				PartOfSpeech: "noun",
				Definitions: []Definition{
					{Text: "a precious stone consisting of a clear and colorless crystalline form of pure carbon", Example: "a diamond ring", Synonyms: []string{"gem", "jewel", "precious stone"}},
				},
			},
		},
	},
	{
		Word:          "shining",
		Pronunciation: "/ˈʃaɪnɪŋ/",
		Phonetic:      "ˈʃaɪnɪŋ",
		Meanings: []Meaning{
			{
				PartOfSpeech: "adjective",
				Definitions: []Definition{
					{Text: "giving out or reflecting bright light", Example: "a shining white surface", Synonyms: []string{"bright", "brilliant", "gleaming"}},
				},
			},
		},
	},
	{
		Word:          "love",
		Pronunciation: "/lʌv/",
		Phonetic:      "lʌv",
		Meanings: []Meaning{
			{
				PartOfSpeech: "noun",
				Definitions: []Definition{
					{Text: "an intense feeling of deep affection", Example: "a deep love for music", Synonyms: []string{"affection", "adoration", "devotion"}},
				},
			},
			{
				PartOfSpeech: "verb",
				Definitions: []Definition{
					{Text: "feel deep affection for someone or something", Example: "I love you more than words can say", Synonyms: []string{"adore", "care for", "cherish"}},
				},
			},
		},
	},
	{
		Word:          "heart",
		Pronunciation: "/hɑːrt/",
		Phonetic:      "hɑːrt",
		Meanings: []Meaning{
			{
				PartOfSpeech: "noun",
				Definitions: []Definition{
					{Text: "a hollow muscular organ that pumps the blood through the circulatory system", Example: "the doctor listened to his heart", Synonyms: []string{"cardiac muscle"}},
					{Text: "the center of a person's thoughts and emotions, especially love", Example: "she poured her heart into the song", Synonyms: []string{"emotions", "feelings", "soul"}},
				},
			},
		},
	},
	{
		Word:          "dance",
		Pronunciation: "/dæns/",
		Phonetic:      "dæns",
		Meanings: []Meaning{
			{
				PartOfSpeech: "verb",
				Definitions: []Definition{
					{Text: "move rhythmically to music, typically following a set sequence of steps", Example: "they danced to the rhythm of the music", Synonyms: []string{"move to music", "sway", "boogie"}},
				},
			},
			{
				PartOfSpeech: "noun",
				Definitions: []Definition{
					{Text: "a series of movements that match the speed and rhythm of a piece of music", Example: "everyone was doing the same dance", Synonyms: []string{"choreography", "routine"}},
				},
			},
		},
	},
}
