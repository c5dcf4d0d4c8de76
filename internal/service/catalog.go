package service

// Fixed substitution catalogues. Order matters: every pick is hash-indexed, so
// reordering an entry changes output for the same seed.

// fakeMerchants are plausible UK merchant names used for creditor substitution.
var fakeMerchants = []string{
	"AMAZON", "TESCO", "SAINSBURY'S", "ASDA", "MORRISONS", "WAITROSE",
	"MARKS & SPENCER", "JOHN LEWIS", "NEXT", "H&M", "ZARA", "PRIMARK",
	"STARBUCKS", "COSTA COFFEE", "MCDONALD'S", "KFC", "SUBWAY", "GREGGS",
	"SPOTIFY", "NETFLIX", "DISNEY+", "AMAZON PRIME", "APPLE", "GOOGLE",
	"VODAFONE", "EE", "O2", "THREE", "BT", "SKY", "VIRGIN MEDIA",
	"SHELL", "BP", "ESSO", "TEXACO", "SAINSBURY'S PETROL", "TESCO PETROL",
	"UBER", "DELIVEROO", "JUST EAT", "BOLT", "CITY MAPPER", "TFL",
	"BOOTS", "SUPERDRUG", "HOLLAND & BARRETT", "SPECSAVERS", "VISION EXPRESS",
	"ARGOS", "CURRYS", "SCREWFIX", "B&Q", "HOMEBASE", "IKEA",
	"PIZZA EXPRESS", "NANDOS", "WAGAMAMA", "YO! SUSHI", "LEON", "PRET A MANGER",
	"CINEMA CITY", "ODEON", "VUE CINEMAS", "GYM GROUP", "PURE GYM", "DAVID LLOYD",
	"LLOYDS BANK", "BARCLAYS", "HSBC", "NATWEST", "SANTANDER", "TSB",
	"PAYPAL", "REVOLUT", "MONZO", "STARLING BANK", "WISE", "KLARNA",
}

// cityTokens are location markers we recognise inside an original creditor
// name; their presence means the substitution must keep a location suffix.
var cityTokens = []string{"LONDON", "MANCHESTER", "BIRMINGHAM", "LEEDS", "GLASGOW"}

// fakeCities is the suffix catalogue (a superset of the recognised tokens, so
// the fake location need not match the real one).
var fakeCities = []string{"LONDON", "MANCHESTER", "BIRMINGHAM", "LEEDS", "GLASGOW", "BRISTOL", "LIVERPOOL"}

// referencePatterns synthesise generic free-text references.
var referencePatterns = []string{
	"REF%08d", "TXN%06d", "PAY%07d", "INV%05d",
	"ORD%06d", "PMT%08d", "TRF%07d", "DD%06d",
}

var firstNames = []string{
	"JAMES", "JOHN", "ROBERT", "MICHAEL", "WILLIAM", "DAVID", "RICHARD", "JOSEPH",
	"THOMAS", "CHRISTOPHER", "CHARLES", "DANIEL", "MATTHEW", "ANTHONY", "MARK",
	"SARAH", "JESSICA", "JENNIFER", "ASHLEY", "EMMA", "OLIVIA", "ELIZABETH",
	"SOPHIE", "CHARLOTTE", "LUCY", "HANNAH", "GRACE", "ELLIE", "CHLOE", "EMILY",
}

var surnames = []string{
	"SMITH", "JONES", "TAYLOR", "WILLIAMS", "BROWN", "DAVIES", "EVANS", "WILSON",
	"THOMAS", "ROBERTS", "JOHNSON", "LEWIS", "WALKER", "ROBINSON", "THOMPSON",
	"WHITE", "WATSON", "JACKSON", "WRIGHT", "GREEN", "HARRIS", "COOPER", "KING",
	"LEE", "MARTIN", "CLARKE", "JAMES", "MORGAN", "HUGHES", "EDWARDS", "HILL",
}
