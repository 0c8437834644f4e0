package translit

// This file has been generated -- you probably should NOT EDIT IT !
//
// Emitted by internal/generator. Baseline expansions stem from the
// unidecode data set, amended by the override file. Entries are
// restricted to code points whose ASCII form the decomposition
// fallback cannot recover, plus the Latin-1 range as a fast path.

// asciiFrom maps a Unicode code point to its closest printable-ASCII
// representation. ASCII code points are absent and map to themselves.
var asciiFrom = map[rune]string{
	// Latin-1 Supplement
	'\u00a0': " ",
	'¡':      "!",
	'¢':      "c",
	'£':      "PS",
	'¤':      "$",
	'¥':      "Y",
	'¦':      "|",
	'§':      "SS",
	'¨':      "\"",
	'©':      "(c)",
	'ª':      "a",
	'«':      "<<",
	'¬':      "!",
	'\u00ad': "-",
	'®':      "(r)",
	'¯':      "-",
	'°':      "deg",
	'±':      "+-",
	'²':      "2",
	'³':      "3",
	'´':      "'",
	'µ':      "u",
	'¶':      "P",
	'·':      "*",
	'¸':      ",",
	'¹':      "1",
	'º':      "o",
	'»':      ">>",
	'¼':      "1/4",
	'½':      "1/2",
	'¾':      "3/4",
	'¿':      "?",
	'À':      "A",
	'Á':      "A",
	'Â':      "A",
	'Ã':      "A",
	'Ä':      "A",
	'Å':      "A",
	'Æ':      "AE",
	'Ç':      "C",
	'È':      "E",
	'É':      "E",
	'Ê':      "E",
	'Ë':      "E",
	'Ì':      "I",
	'Í':      "I",
	'Î':      "I",
	'Ï':      "I",
	'Ð':      "D",
	'Ñ':      "N",
	'Ò':      "O",
	'Ó':      "O",
	'Ô':      "O",
	'Õ':      "O",
	'Ö':      "O",
	'×':      "x",
	'Ø':      "O",
	'Ù':      "U",
	'Ú':      "U",
	'Û':      "U",
	'Ü':      "U",
	'Ý':      "Y",
	'Þ':      "Th",
	'ß':      "ss",
	'à':      "a",
	'á':      "a",
	'â':      "a",
	'ã':      "a",
	'ä':      "a",
	'å':      "a",
	'æ':      "ae",
	'ç':      "c",
	'è':      "e",
	'é':      "e",
	'ê':      "e",
	'ë':      "e",
	'ì':      "i",
	'í':      "i",
	'î':      "i",
	'ï':      "i",
	'ð':      "d",
	'ñ':      "n",
	'ò':      "o",
	'ó':      "o",
	'ô':      "o",
	'õ':      "o",
	'ö':      "o",
	'÷':      "/",
	'ø':      "o",
	'ù':      "u",
	'ú':      "u",
	'û':      "u",
	'ü':      "u",
	'ý':      "y",
	'þ':      "th",
	'ÿ':      "y",

	// Latin Extended, code points without a useful decomposition
	'Đ': "D",
	'đ': "d",
	'Ħ': "H",
	'ħ': "h",
	'ı': "i",
	'ĸ': "k",
	'Ŀ': "L",
	'ŀ': "l",
	'Ł': "L",
	'ł': "l",
	'ŉ': "'n",
	'Ŋ': "NG",
	'ŋ': "ng",
	'Œ': "OE",
	'œ': "oe",
	'Ŧ': "T",
	'ŧ': "t",
	'ſ': "s",
	'ƀ': "b",
	'Ɓ': "B",
	'Ɖ': "D",
	'Ɗ': "D",
	'Ə': "E",
	'Ƒ': "F",
	'ƒ': "f",
	'Ɨ': "I",
	'ƙ': "k",
	'ƚ': "l",
	'Ɲ': "N",
	'Ɵ': "O",
	'Ƣ': "OI",
	'ƣ': "oi",
	'Ʃ': "SH",
	'ƫ': "t",
	'Ƭ': "T",
	'Ʊ': "U",
	'Ƶ': "Z",
	'ƶ': "z",
	'ǝ': "e",
	'ə': "e",
	'Ǥ': "G",
	'ǥ': "g",
	'Ȝ': "G",
	'ȝ': "g",
	'Ⱥ': "A",
	'Ȼ': "C",
	'ȼ': "c",
	'Ƀ': "B",
	'ɇ': "e",
	'ẞ': "SS",

	// Greek
	'Α': "A",
	'Β': "B",
	'Γ': "G",
	'Δ': "D",
	'Ε': "E",
	'Ζ': "Z",
	'Η': "E",
	'Θ': "Th",
	'Ι': "I",
	'Κ': "K",
	'Λ': "L",
	'Μ': "M",
	'Ν': "N",
	'Ξ': "X",
	'Ο': "O",
	'Π': "P",
	'Ρ': "R",
	'Σ': "S",
	'Τ': "T",
	'Υ': "U",
	'Φ': "Ph",
	'Χ': "Kh",
	'Ψ': "Ps",
	'Ω': "O",
	'α': "a",
	'β': "b",
	'γ': "g",
	'δ': "d",
	'ε': "e",
	'ζ': "z",
	'η': "e",
	'θ': "th",
	'ι': "i",
	'κ': "k",
	'λ': "l",
	'μ': "m",
	'ν': "n",
	'ξ': "x",
	'ο': "o",
	'π': "p",
	'ρ': "r",
	'ς': "s",
	'σ': "s",
	'τ': "t",
	'υ': "u",
	'φ': "ph",
	'χ': "kh",
	'ψ': "ps",
	'ω': "o",

	// Cyrillic
	'А': "A",
	'Б': "B",
	'В': "V",
	'Г': "G",
	'Д': "D",
	'Е': "E",
	'Ё': "Yo",
	'Ж': "Zh",
	'З': "Z",
	'И': "I",
	'Й': "Y",
	'К': "K",
	'Л': "L",
	'М': "M",
	'Н': "N",
	'О': "O",
	'П': "P",
	'Р': "R",
	'С': "S",
	'Т': "T",
	'У': "U",
	'Ф': "F",
	'Х': "Kh",
	'Ц': "Ts",
	'Ч': "Ch",
	'Ш': "Sh",
	'Щ': "Shch",
	'Ъ': "\"",
	'Ы': "Y",
	'Ь': "'",
	'Э': "E",
	'Ю': "Yu",
	'Я': "Ya",
	'а': "a",
	'б': "b",
	'в': "v",
	'г': "g",
	'д': "d",
	'е': "e",
	'ё': "yo",
	'ж': "zh",
	'з': "z",
	'и': "i",
	'й': "y",
	'к': "k",
	'л': "l",
	'м': "m",
	'н': "n",
	'о': "o",
	'п': "p",
	'р': "r",
	'с': "s",
	'т': "t",
	'у': "u",
	'ф': "f",
	'х': "kh",
	'ц': "ts",
	'ч': "ch",
	'ш': "sh",
	'щ': "shch",
	'ъ': "\"",
	'ы': "y",
	'ь': "'",
	'э': "e",
	'ю': "yu",
	'я': "ya",

	// Digits beyond ASCII
	'٠': "0",
	'١': "1",
	'٢': "2",
	'٣': "3",
	'٤': "4",
	'٥': "5",
	'٦': "6",
	'٧': "7",
	'٨': "8",
	'٩': "9",
	'۰': "0",
	'۱': "1",
	'۲': "2",
	'۳': "3",
	'۴': "4",
	'۵': "5",
	'۶': "6",
	'۷': "7",
	'۸': "8",
	'۹': "9",

	// General punctuation and symbols
	'\u2010': "-",
	'\u2011': "-",
	'\u2012': "-",
	'–':      "-",
	'—':      "-",
	'―':      "-",
	'‘':      "'",
	'’':      "'",
	'‚':      ",",
	'“':      "\"",
	'”':      "\"",
	'„':      "\"",
	'†':      "+",
	'‡':      "++",
	'•':      "*",
	'…':      "...",
	'′':      "'",
	'″':      "\"",
	'‹':      "<",
	'›':      ">",
	'⁄':      "/",
	'€':      "EUR",
	'℃':      "C",
	'℉':      "F",
	'ℓ':      "l",
	'№':      "No",
	'™':      "(tm)",
	'←':      "<-",
	'→':      "->",
	'−':      "-",
	'∕':      "/",
	'∙':      "*",
	'≤':      "<=",
	'≥':      ">=",

	// Pictographs and emoji
	'☀': "sun",
	'☁': "cloud",
	'☂': "umbrella",
	'☃': "snowman",
	'★': "star",
	'☆': "star",
	'☎': "telephone",
	'☕': "coffee",
	'☘': "shamrock",
	'☠': "skull",
	'☮': "peace",
	'☺': "smile",
	'♠': "spade",
	'♣': "club",
	'♥': "heart",
	'♦': "diamond",
	'♪': "note",
	'♫': "notes",
	'⚓': "anchor",
	'⚠': "warning",
	'⚡': "zap",
	'✂': "scissors",
	'✈': "airplane",
	'✉': "envelope",
	'✊': "fist",
	'✋': "hand",
	'✏': "pencil",
	'✓': "check",
	'✔': "check",
	'✖': "x",
	'✗': "x",
	'✨': "sparkles",
	'❄': "snowflake",
	'❌': "x",
	'❓': "?",
	'❗': "!",
	'❤': "heart",
	'⭐': "star",
	'🌍': "globe",
	'🌙': "moon",
	'🌟': "star",
	'🌧': "rain",
	'🍀': "clover",
	'🍕': "pizza",
	'🍺': "beer",
	'🎁': "gift",
	'🎉': "tada",
	'🎵': "note",
	'🏠': "house",
	'🐈': "cat",
	'🐕': "dog",
	'🐟': "fish",
	'👀': "eyes",
	'👍': "thumbsup",
	'👎': "thumbsdown",
	'💡': "bulb",
	'💥': "boom",
	'💧': "droplet",
	'💯': "hundred",
	'📁': "folder",
	'📄': "page",
	'🔑': "key",
	'🔒': "lock",
	'🔓': "unlock",
	'🔥': "fire",
	'😀': "grinning",
	'😁': "grin",
	'😂': "joy",
	'😉': "wink",
	'😊': "blush",
	'😎': "sunglasses",
	'😢': "cry",
	'🚀': "rocket",
	'🚗': "car",
	'🚩': "flag",
	'🛑': "stop",
	'🤖': "robot",
	'🥇': "gold",
}
