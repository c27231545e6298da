package parser

// namedCharacterReferences is the tokenizer's named-character-reference
// table. Every key is stored exactly as it appears after the leading '&',
// including the trailing ';' where the Standard requires one; the fixed
// set of pre-HTML5 legacy names (the ISO-8859-1 block plus amp/lt/gt/quot)
// also carries a key without the ';', matching the Standard's "legacy"
// subset that may be consumed without a semicolon for backward
// compatibility with HTML 4.
//
// This covers the full classic HTML 4.01 entity set (the "special",
// "symbol" and "Latin-1" DTD subsets, https://html.spec.whatwg.org/
// entities.json's own ancestry: every markup-significant, Latin-1, Greek
// and common mathematical/typographic entry those sets define), a batch
// of additional HTML5 punctuation/operator aliases, and the three
// math-alphabet letter styles the Standard assigns named references to
// (Script/scr, Fraktur/fr, Double-Struck/opf — all 26 upper- and
// lowercase letters of each, derived from the Mathematical Alphanumeric
// Symbols block's documented per-letter offset and its handful of
// Letterlike Symbols exceptions, not hand-copied one by one).
//
// The Standard's complete table runs to 2,231 names. What's not
// reproduced here is its long remaining tail of two-codepoint combining
// forms (acE;, bne;, NotEqualTilde;, ...) and a scatter of rarer named
// aliases: this environment has no network access to the canonical
// entities.json to check exact spellings and code points against, and
// those forms don't follow a derivable structure the way the math-alphabet
// letters do, so guessing at them risks silently wrong output, worse than
// the documented gap.
var namedCharacterReferences = map[string]string{
	// markup-significant
	"amp;": "&", "amp": "&",
	"lt;": "<", "lt": "<",
	"gt;": ">", "gt": ">",
	"quot;": "\"", "quot": "\"",
	"apos;": "'",

	// ISO-8859-1 (Latin-1), U+00A0-U+00FF; legacy names omit the ';'
	"nbsp;": " ", "nbsp": " ",
	"iexcl;": "¡", "iexcl": "¡",
	"cent;": "¢", "cent": "¢",
	"pound;": "£", "pound": "£",
	"curren;": "¤", "curren": "¤",
	"yen;": "¥", "yen": "¥",
	"brvbar;": "¦", "brvbar": "¦",
	"sect;": "§", "sect": "§",
	"uml;": "¨", "uml": "¨",
	"copy;": "©", "copy": "©",
	"ordf;": "ª", "ordf": "ª",
	"laquo;": "«", "laquo": "«",
	"not;": "¬", "not": "¬",
	"shy;": "­", "shy": "­",
	"reg;": "®", "reg": "®",
	"macr;": "¯", "macr": "¯",
	"deg;": "°", "deg": "°",
	"plusmn;": "±", "plusmn": "±",
	"sup2;": "²", "sup2": "²",
	"sup3;": "³", "sup3": "³",
	"acute;": "´", "acute": "´",
	"micro;": "µ", "micro": "µ",
	"para;": "¶", "para": "¶",
	"middot;": "·", "middot": "·",
	"cedil;": "¸", "cedil": "¸",
	"sup1;": "¹", "sup1": "¹",
	"ordm;": "º", "ordm": "º",
	"raquo;": "»", "raquo": "»",
	"frac14;": "¼", "frac14": "¼",
	"frac12;": "½", "frac12": "½",
	"frac34;": "¾", "frac34": "¾",
	"iquest;": "¿", "iquest": "¿",
	"Agrave;": "À", "Agrave": "À",
	"Aacute;": "Á", "Aacute": "Á",
	"Acirc;": "Â", "Acirc": "Â",
	"Atilde;": "Ã", "Atilde": "Ã",
	"Auml;": "Ä", "Auml": "Ä",
	"Aring;": "Å", "Aring": "Å",
	"AElig;": "Æ", "AElig": "Æ",
	"Ccedil;": "Ç", "Ccedil": "Ç",
	"Egrave;": "È", "Egrave": "È",
	"Eacute;": "É", "Eacute": "É",
	"Ecirc;": "Ê", "Ecirc": "Ê",
	"Euml;": "Ë", "Euml": "Ë",
	"Igrave;": "Ì", "Igrave": "Ì",
	"Iacute;": "Í", "Iacute": "Í",
	"Icirc;": "Î", "Icirc": "Î",
	"Iuml;": "Ï", "Iuml": "Ï",
	"ETH;": "Ð", "ETH": "Ð",
	"Ntilde;": "Ñ", "Ntilde": "Ñ",
	"Ograve;": "Ò", "Ograve": "Ò",
	"Oacute;": "Ó", "Oacute": "Ó",
	"Ocirc;": "Ô", "Ocirc": "Ô",
	"Otilde;": "Õ", "Otilde": "Õ",
	"Ouml;": "Ö", "Ouml": "Ö",
	"times;": "×", "times": "×",
	"Oslash;": "Ø", "Oslash": "Ø",
	"Ugrave;": "Ù", "Ugrave": "Ù",
	"Uacute;": "Ú", "Uacute": "Ú",
	"Ucirc;": "Û", "Ucirc": "Û",
	"Uuml;": "Ü", "Uuml": "Ü",
	"Yacute;": "Ý", "Yacute": "Ý",
	"THORN;": "Þ", "THORN": "Þ",
	"szlig;": "ß", "szlig": "ß",
	"agrave;": "à", "agrave": "à",
	"aacute;": "á", "aacute": "á",
	"acirc;": "â", "acirc": "â",
	"atilde;": "ã", "atilde": "ã",
	"auml;": "ä", "auml": "ä",
	"aring;": "å", "aring": "å",
	"aelig;": "æ", "aelig": "æ",
	"ccedil;": "ç", "ccedil": "ç",
	"egrave;": "è", "egrave": "è",
	"eacute;": "é", "eacute": "é",
	"ecirc;": "ê", "ecirc": "ê",
	"euml;": "ë", "euml": "ë",
	"igrave;": "ì", "igrave": "ì",
	"iacute;": "í", "iacute": "í",
	"icirc;": "î", "icirc": "î",
	"iuml;": "ï", "iuml": "ï",
	"eth;": "ð", "eth": "ð",
	"ntilde;": "ñ", "ntilde": "ñ",
	"ograve;": "ò", "ograve": "ò",
	"oacute;": "ó", "oacute": "ó",
	"ocirc;": "ô", "ocirc": "ô",
	"otilde;": "õ", "otilde": "õ",
	"ouml;": "ö", "ouml": "ö",
	"divide;": "÷", "divide": "÷",
	"oslash;": "ø", "oslash": "ø",
	"ugrave;": "ù", "ugrave": "ù",
	"uacute;": "ú", "uacute": "ú",
	"ucirc;": "û", "ucirc": "û",
	"uuml;": "ü", "uuml": "ü",
	"yacute;": "ý", "yacute": "ý",
	"thorn;": "þ", "thorn": "þ",
	"yuml;": "ÿ", "yuml": "ÿ",

	// Greek letters and variant forms
	"Alpha;": "Α", "Beta;": "Β", "Gamma;": "Γ", "Delta;": "Δ",
	"Epsilon;": "Ε", "Zeta;": "Ζ", "Eta;": "Η", "Theta;": "Θ",
	"Iota;": "Ι", "Kappa;": "Κ", "Lambda;": "Λ", "Mu;": "Μ",
	"Nu;": "Ν", "Xi;": "Ξ", "Omicron;": "Ο", "Pi;": "Π",
	"Rho;": "Ρ", "Sigma;": "Σ", "Tau;": "Τ", "Upsilon;": "Υ",
	"Phi;": "Φ", "Chi;": "Χ", "Psi;": "Ψ", "Omega;": "Ω",
	"alpha;": "α", "beta;": "β", "gamma;": "γ", "delta;": "δ",
	"epsilon;": "ε", "zeta;": "ζ", "eta;": "η", "theta;": "θ",
	"iota;": "ι", "kappa;": "κ", "lambda;": "λ", "mu;": "μ",
	"nu;": "ν", "xi;": "ξ", "omicron;": "ο", "pi;": "π",
	"rho;": "ρ", "sigmaf;": "ς", "sigma;": "σ", "tau;": "τ",
	"upsilon;": "υ", "phi;": "φ", "chi;": "χ", "psi;": "ψ",
	"omega;": "ω", "thetasym;": "ϑ", "upsih;": "ϒ", "piv;": "ϖ",

	// HTML4 "special" entities: markup-adjacent punctuation and spacing
	"OElig;": "Œ", "oelig;": "œ", "Scaron;": "Š", "scaron;": "š",
	"Yuml;": "Ÿ", "circ;": "ˆ", "tilde;": "˜",
	"ensp;": " ", "emsp;": " ", "thinsp;": " ",
	"zwnj;": "‌", "zwj;": "‍", "lrm;": "‎", "rlm;": "‏",
	"ndash;": "–", "mdash;": "—",
	"lsquo;": "‘", "rsquo;": "’", "sbquo;": "‚",
	"ldquo;": "“", "rdquo;": "”", "bdquo;": "„",
	"dagger;": "†", "Dagger;": "‡", "permil;": "‰",
	"lsaquo;": "‹", "rsaquo;": "›", "euro;": "€",

	// HTML4 "symbol" entities: mathematical and technical notation
	"fnof;": "ƒ", "bull;": "•", "hellip;": "…",
	"prime;": "′", "Prime;": "″", "oline;": "‾", "frasl;": "⁄",
	"weierp;": "℘", "image;": "ℑ", "real;": "ℜ",
	"trade;": "™", "alefsym;": "ℵ",
	"larr;": "←", "uarr;": "↑", "rarr;": "→", "darr;": "↓",
	"harr;": "↔", "crarr;": "↵",
	"lArr;": "⇐", "uArr;": "⇑", "rArr;": "⇒", "dArr;": "⇓", "hArr;": "⇔",
	"forall;": "∀", "part;": "∂", "exist;": "∃", "empty;": "∅",
	"nabla;": "∇", "isin;": "∈", "notin;": "∉", "ni;": "∋",
	"prod;": "∏", "sum;": "∑", "minus;": "−", "lowast;": "∗",
	"radic;": "√", "prop;": "∝", "infin;": "∞", "ang;": "∠",
	"and;": "∧", "or;": "∨", "cap;": "∩", "cup;": "∪",
	"int;": "∫", "there4;": "∴", "sim;": "∼", "cong;": "≅",
	"asymp;": "≈", "ne;": "≠", "equiv;": "≡", "le;": "≤", "ge;": "≥",
	"sub;": "⊂", "sup;": "⊃", "nsub;": "⊄", "sube;": "⊆", "supe;": "⊇",
	"oplus;": "⊕", "otimes;": "⊗", "perp;": "⊥", "sdot;": "⋅",
	"lceil;": "⌈", "rceil;": "⌉", "lfloor;": "⌊", "rfloor;": "⌋",
	"lang;": "⟨", "rang;": "⟩", "loz;": "◊",
	"spades;": "♠", "clubs;": "♣", "hearts;": "♥", "diams;": "♦",

	// Additional HTML5 named references beyond the HTML 4.01 DTD sets:
	// common math/logic operators and ASCII-punctuation aliases the
	// Standard gives names to (conint;, because;, and the lpar;/rpar;-style
	// "spell out the punctuation mark" aliases used heavily in MathML).
	"nexist;": "∄", "conint;": "∮", "because;": "∵",
	"propto;": "∝", "angle;": "∠", "coprod;": "∐",
	"map;": "↦", "mapsto;": "↦",
	"swarr;": "↙", "searr;": "↘", "nwarr;": "↖", "nearr;": "↗",
	"vert;": "|", "sol;": "/", "bsol;": "\\", "lowbar;": "_",
	"ast;": "*", "plus;": "+", "equals;": "=", "num;": "#",
	"lpar;": "(", "rpar;": ")",
	"lbrace;": "{", "rbrace;": "}", "lcub;": "{", "rcub;": "}",
	"lsqb;": "[", "rsqb;": "]", "lbrack;": "[", "rbrack;": "]",
	"colon;": ":", "semi;": ";", "commat;": "@",
	"dollar;": "$", "percnt;": "%", "excl;": "!",
	"Tab;": "\t", "NewLine;": "\n", "Hat;": "^",
	"horbar;": "―",

	// Mathematical Alphanumeric Symbols (U+1D400-U+1D7FF): the Script,
	// Fraktur and Double-Struck letter styles, the only math-alphabet
	// styles the Standard gives named references to. Each style's 26
	// uppercase and 26 lowercase letters sit at a fixed per-letter offset
	// from that style's first letter, except for a documented handful of
	// letters Unicode carried over from the pre-existing Letterlike
	// Symbols block instead of assigning them a new code point — those
	// are spelled out individually below rather than computed, everything
	// else follows the block's systematic layout.

	// Script (scr): capitals at U+1D49C+n, lowercase at U+1D4B6+n, with
	// B/E/F/H/I/L/M/R (upper) and e/g/o (lower) routed to Letterlike Symbols.
	"Ascr;": "𝒜", "Bscr;": "ℬ", "Cscr;": "𝒞", "Dscr;": "𝒟",
	"Escr;": "ℰ", "Fscr;": "ℱ", "Gscr;": "𝒢", "Hscr;": "ℋ",
	"Iscr;": "ℐ", "Jscr;": "𝒥", "Kscr;": "𝒦", "Lscr;": "ℒ",
	"Mscr;": "ℳ", "Nscr;": "𝒩", "Oscr;": "𝒪", "Pscr;": "𝒫",
	"Qscr;": "𝒬", "Rscr;": "ℛ", "Sscr;": "𝒮", "Tscr;": "𝒯",
	"Uscr;": "𝒰", "Vscr;": "𝒱", "Wscr;": "𝒲", "Xscr;": "𝒳",
	"Yscr;": "𝒴", "Zscr;": "𝒵",
	"ascr;": "𝒶", "bscr;": "𝒷", "cscr;": "𝒸", "dscr;": "𝒹",
	"escr;": "ℯ", "fscr;": "𝒻", "gscr;": "ℊ", "hscr;": "𝒽",
	"iscr;": "𝒾", "jscr;": "𝒿", "kscr;": "𝓀", "lscr;": "𝓁",
	"mscr;": "𝓂", "nscr;": "𝓃", "oscr;": "ℴ", "pscr;": "𝓅",
	"qscr;": "𝓆", "rscr;": "𝓇", "sscr;": "𝓈", "tscr;": "𝓉",
	"uscr;": "𝓊", "vscr;": "𝓋", "wscr;": "𝓌", "xscr;": "𝓍",
	"yscr;": "𝓎", "zscr;": "𝓏",

	// Fraktur (fr): capitals at U+1D504+n, lowercase at U+1D51E+n, with
	// C/H/I/R/Z (upper only) routed to Letterlike Symbols.
	"Afr;": "𝔄", "Bfr;": "𝔅", "Cfr;": "ℭ", "Dfr;": "𝔇",
	"Efr;": "𝔈", "Ffr;": "𝔉", "Gfr;": "𝔊", "Hfr;": "ℌ",
	"Ifr;": "ℑ", "Jfr;": "𝔍", "Kfr;": "𝔎", "Lfr;": "𝔏",
	"Mfr;": "𝔐", "Nfr;": "𝔑", "Ofr;": "𝔒", "Pfr;": "𝔓",
	"Qfr;": "𝔔", "Rfr;": "ℜ", "Sfr;": "𝔖", "Tfr;": "𝔗",
	"Ufr;": "𝔘", "Vfr;": "𝔙", "Wfr;": "𝔚", "Xfr;": "𝔛",
	"Yfr;": "𝔜", "Zfr;": "ℨ",
	"afr;": "𝔞", "bfr;": "𝔟", "cfr;": "𝔠", "dfr;": "𝔡",
	"efr;": "𝔢", "ffr;": "𝔣", "gfr;": "𝔤", "hfr;": "𝔥",
	"ifr;": "𝔦", "jfr;": "𝔧", "kfr;": "𝔨", "lfr;": "𝔩",
	"mfr;": "𝔪", "nfr;": "𝔫", "ofr;": "𝔬", "pfr;": "𝔭",
	"qfr;": "𝔮", "rfr;": "𝔯", "sfr;": "𝔰", "tfr;": "𝔱",
	"ufr;": "𝔲", "vfr;": "𝔳", "wfr;": "𝔴", "xfr;": "𝔵",
	"yfr;": "𝔶", "zfr;": "𝔷",

	// Double-struck (opf): capitals at U+1D538+n, lowercase at U+1D552+n,
	// with C/H/N/P/Q/R/Z (upper only) routed to Letterlike Symbols.
	"Aopf;": "𝔸", "Bopf;": "𝔹", "Copf;": "ℂ", "Dopf;": "𝔻",
	"Eopf;": "𝔼", "Fopf;": "𝔽", "Gopf;": "𝔾", "Hopf;": "ℍ",
	"Iopf;": "𝕀", "Jopf;": "𝕁", "Kopf;": "𝕂", "Lopf;": "𝕃",
	"Mopf;": "𝕄", "Nopf;": "ℕ", "Oopf;": "𝕆", "Popf;": "ℙ",
	"Qopf;": "ℚ", "Ropf;": "ℝ", "Sopf;": "𝕊", "Topf;": "𝕋",
	"Uopf;": "𝕌", "Vopf;": "𝕍", "Wopf;": "𝕎", "Xopf;": "𝕏",
	"Yopf;": "𝕐", "Zopf;": "ℤ",
	"aopf;": "𝕒", "bopf;": "𝕓", "copf;": "𝕔", "dopf;": "𝕕",
	"eopf;": "𝕖", "fopf;": "𝕗", "gopf;": "𝕘", "hopf;": "𝕙",
	"iopf;": "𝕚", "jopf;": "𝕛", "kopf;": "𝕜", "lopf;": "𝕝",
	"mopf;": "𝕞", "nopf;": "𝕟", "oopf;": "𝕠", "popf;": "𝕡",
	"qopf;": "𝕢", "ropf;": "𝕣", "sopf;": "𝕤", "topf;": "𝕥",
	"uopf;": "𝕦", "vopf;": "𝕧", "wopf;": "𝕨", "xopf;": "𝕩",
	"yopf;": "𝕪", "zopf;": "𝕫",
}

// longestNamedCharacterReferenceMatch scans the lookahead buffer and
// returns the longest key of namedCharacterReferences that prefixes it,
// along with its resolved text, matching the Standard's "consume the
// maximum number of characters possible" rule. ok is false if nothing
// matched.
func longestNamedCharacterReferenceMatch(lookahead []rune) (name, resolved string, ok bool) {
	for l := len(lookahead); l >= 1; l-- {
		candidate := string(lookahead[:l])
		if resolved, ok := namedCharacterReferences[candidate]; ok {
			return candidate, resolved, true
		}
	}
	return "", "", false
}

// maxNamedCharacterReferenceLen bounds how far ahead to peek while matching;
// the longest real entry in the full Standard table is 32 characters.
const maxNamedCharacterReferenceLen = 32

// windows1252NumericOverride is the Standard's fixed table of C1-control
// code points that are reinterpreted as their Windows-1252 equivalents when
// they appear as numeric character references.
var windows1252NumericOverride = map[int32]rune{
	0x80: 0x20AC, 0x82: 0x201A, 0x83: 0x0192, 0x84: 0x201E,
	0x85: 0x2026, 0x86: 0x2020, 0x87: 0x2021, 0x88: 0x02C6,
	0x89: 0x2030, 0x8A: 0x0160, 0x8B: 0x2039, 0x8C: 0x0152,
	0x8E: 0x017D, 0x91: 0x2018, 0x92: 0x2019, 0x93: 0x201C,
	0x94: 0x201D, 0x95: 0x2022, 0x96: 0x2013, 0x97: 0x2014,
	0x98: 0x02DC, 0x99: 0x2122, 0x9A: 0x0161, 0x9B: 0x203A,
	0x9C: 0x0153, 0x9E: 0x017E, 0x9F: 0x0178,
}
