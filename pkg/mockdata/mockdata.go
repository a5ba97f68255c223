// Package mockdata generates the built-in name collection used when
// the remote feed is unavailable. The output is deterministic: every
// call returns the same rows in the same order.
package mockdata

import (
	"math/rand/v2"
	"strconv"

	"github.com/namenest/namenest/pkg/names"
)

// PerReligion is the number of generated records for each religion.
const PerReligion = 700

// seed of the popularity generator.
const seed1, seed2 = 2025, 11

type baseName struct {
	en, hi               string
	meaningEN, meaningHI string
}

type group struct {
	religion names.Religion
	origin   string
	names    []baseName
}

var groups = []group{
	{
		religion: names.Hindu,
		origin:   "Sanskrit",
		names: []baseName{
			{"Aarav", "आरव", "Peaceful, wise", "शांत, बुद्धिमान"},
			{"Aadhya", "आध्या", "First power, Goddess Durga", "प्रथम शक्ति, देवी दुर्गा"},
			{"Arjun", "अर्जुन", "Bright, shining, white", "उज्ज्वल, चमकदार, सफेद"},
			{"Ananya", "अनन्या", "Unique, incomparable", "अनोखी, अतुलनीय"},
			{"Krish", "कृष", "Short form of Krishna", "कृष्ण का छोटा रूप"},
			{"Diya", "दीया", "Lamp, light", "दीपक, प्रकाश"},
		},
	},
	{
		religion: names.Muslim,
		origin:   "Arabic",
		names: []baseName{
			{"Aamir", "आमिर", "Rich, prosperous", "धनी, समृद्ध"},
			{"Aisha", "आइशा", "Living, prosperous", "जीवित, समृद्ध"},
			{"Zain", "ज़ैन", "Beauty, grace", "सुंदरता, अनुग्रह"},
			{"Fatima", "फातिमा", "Captivating, one who abstains", "मोहक, जो संयम रखती है"},
			{"Rayaan", "रयान", "Gates of paradise", "स्वर्ग के द्वार"},
			{"Zara", "ज़ारा", "Blooming flower, princess", "खिला हुआ फूल, राजकुमारी"},
		},
	},
	{
		religion: names.Christian,
		origin:   "Hebrew",
		names: []baseName{
			{"Daniel", "डेनियल", "God is my judge", "भगवान मेरे न्यायाधीश हैं"},
			{"Mary", "मैरी", "Beloved, wished for child", "प्रिय, वांछित बच्चा"},
			{"David", "डेविड", "Beloved, dear", "प्रिय, प्यारा"},
			{"Sarah", "सारा", "Princess, lady", "राजकुमारी, महिला"},
			{"Michael", "माइकल", "Who is like God", "जो भगवान के समान है"},
			{"Anna", "अन्ना", "Grace, favor", "कृपा, अनुग्रह"},
		},
	},
	{
		religion: names.Sikh,
		origin:   "Punjabi",
		names: []baseName{
			{"Arman", "अरमान", "Desire, wish", "इच्छा, कामना"},
			{"Simran", "सिमरन", "Remembrance of God", "भगवान का स्मरण"},
			{"Karan", "करण", "Helper, noble", "सहायक, कुलीन"},
			{"Jaspreet", "जसप्रीत", "Love for praise of God", "भगवान की स्तुति के लिए प्रेम"},
			{"Gurman", "गुरमन", "Heart of the guru", "गुरु का हृदय"},
			{"Harleen", "हरलीन", "Absorbed in God", "भगवान में लीन"},
		},
	},
}

var genders = []names.Gender{names.Boy, names.Girl, names.Unisex}

var zodiacSigns = []string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Religions returns religions present in the generated collection.
func Religions() []names.Religion {
	res := make([]names.Religion, len(groups))
	for i, g := range groups {
		res[i] = g.religion
	}
	return res
}

// Rows generates feed-shaped rows for every religion. The first
// occurrence of a base name keeps it unchanged, later ones get an
// ordinal suffix ("Aarav 2").
func Rows() []names.Row {
	rnd := rand.New(rand.NewPCG(seed1, seed2))
	res := make([]names.Row, 0, len(groups)*PerReligion)
	for _, g := range groups {
		for i := range PerReligion {
			base := g.names[i%len(g.names)]
			var variation string
			if i >= len(g.names) {
				variation = " " + strconv.Itoa(i/len(g.names)+1)
			}
			res = append(res, names.Row{
				names.FieldName:       base.en + variation,
				names.FieldNameHi:     base.hi + variation,
				names.FieldMeaning:    base.meaningEN,
				names.FieldMeaningHi:  base.meaningHI,
				names.FieldGender:     genders[i%len(genders)].String(),
				names.FieldOrigin:     g.origin,
				names.FieldReligion:   g.religion.String(),
				names.FieldZodiac:     zodiacSigns[i%len(zodiacSigns)],
				names.FieldPopularity: strconv.Itoa(rnd.IntN(100) + 1),
			})
		}
	}
	return res
}

// Records generates the mock collection through the given normalizer,
// so mock records follow the same rules as feed records.
func Records(n *names.Normalizer) []names.Record {
	res, _ := n.Normalize(Rows())
	return res
}
