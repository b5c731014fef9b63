package partid

// builtinVocabulary is the curated announcement vocabulary shipped with the
// package. It is copied into every Dictionary and never mutated.
var builtinVocabulary = map[string]Entry{
	// stations
	"名古屋": {Reading: "なごや", Romaji: "nagoya", Category: CategoryPlaceName, Short: "nagoya"},
	"大阪":  {Reading: "おおさか", Romaji: "osaka", Category: CategoryPlaceName, Short: "osaka"},
	"東京":  {Reading: "とうきょう", Romaji: "tokyo", Category: CategoryPlaceName, Short: "tokyo"},
	"京都":  {Reading: "きょうと", Romaji: "kyoto", Category: CategoryPlaceName, Short: "kyoto"},
	"横浜":  {Reading: "よこはま", Romaji: "yokohama", Category: CategoryPlaceName, Short: "yokohama"},
	"神戸":  {Reading: "こうべ", Romaji: "kobe", Category: CategoryPlaceName, Short: "kobe"},
	"新大阪": {Reading: "しんおおさか", Romaji: "shin-osaka", Category: CategoryPlaceName, Short: "shinosaka"},
	"品川":  {Reading: "しながわ", Romaji: "shinagawa", Category: CategoryPlaceName, Short: "shinagawa"},
	"新横浜": {Reading: "しんよこはま", Romaji: "shin-yokohama", Category: CategoryPlaceName, Short: "shinyokohama"},
	"博多":  {Reading: "はかた", Romaji: "hakata", Category: CategoryPlaceName, Short: "hakata"},
	"仙台":  {Reading: "せんだい", Romaji: "sendai", Category: CategoryPlaceName, Short: "sendai"},
	"広島":  {Reading: "ひろしま", Romaji: "hiroshima", Category: CategoryPlaceName, Short: "hiroshima"},

	// train types
	"特急":   {Reading: "とっきゅう", Romaji: "tokkyuu", Category: CategoryTrainType, Short: "ltdexp"},
	"急行":   {Reading: "きゅうこう", Romaji: "kyuukou", Category: CategoryTrainType, Short: "exp"},
	"快速":   {Reading: "かいそく", Romaji: "kaisoku", Category: CategoryTrainType, Short: "rapid"},
	"準急":   {Reading: "じゅんきゅう", Romaji: "junkyuu", Category: CategoryTrainType, Short: "semiexp"},
	"普通":   {Reading: "ふつう", Romaji: "futsuu", Category: CategoryTrainType, Short: "local"},
	"各駅停車": {Reading: "かくえきていしゃ", Romaji: "kakueki-teisha", Category: CategoryTrainType, Short: "local"},
	"通勤急行": {Reading: "つうきんきゅうこう", Romaji: "tsuukin-kyuukou", Category: CategoryTrainType, Short: "comexp"},
	"快速急行": {Reading: "かいそくきゅうこう", Romaji: "kaisoku-kyuukou", Category: CategoryTrainType, Short: "rapidexp"},
	"区間急行": {Reading: "くかんきゅうこう", Romaji: "kukan-kyuukou", Category: CategoryTrainType, Short: "sectexp"},

	// timing and actions
	"まもなく": {Reading: "まもなく", Romaji: "mamonaku", Category: CategoryAdverb, Short: "soon"},
	"次の":   {Reading: "つぎの", Romaji: "tsugi-no", Category: CategoryAdnominal, Short: "next"},
	"最終":   {Reading: "さいしゅう", Romaji: "saishuu", Category: CategoryNoun, Short: "last"},
	"始発":   {Reading: "しはつ", Romaji: "shihatsu", Category: CategoryNoun, Short: "first"},
	"到着":   {Reading: "とうちゃく", Romaji: "touchaku", Category: CategoryNoun, Short: "arrive"},
	"発車":   {Reading: "はっしゃ", Romaji: "hassha", Category: CategoryNoun, Short: "depart"},
	"通過":   {Reading: "つうか", Romaji: "tsuuka", Category: CategoryNoun, Short: "pass"},
	"停車":   {Reading: "ていしゃ", Romaji: "teisha", Category: CategoryNoun, Short: "stop"},

	// direction and places
	"上り":  {Reading: "のぼり", Romaji: "nobori", Category: CategoryNoun, Short: "up"},
	"下り":  {Reading: "くだり", Romaji: "kudari", Category: CategoryNoun, Short: "down"},
	"行き":  {Reading: "いき", Romaji: "iki", Category: CategorySuffix, Short: "bound"},
	"方面":  {Reading: "ほうめん", Romaji: "houmen", Category: CategoryNoun, Short: "direction"},
	"経由":  {Reading: "けいゆ", Romaji: "keiyu", Category: CategoryNoun, Short: "via"},
	"直通":  {Reading: "ちょくつう", Romaji: "chokutsuu", Category: CategoryNoun, Short: "direct"},
	"のりば": {Reading: "のりば", Romaji: "noriba", Category: CategoryNoun, Short: "platform"},
	"番線":  {Reading: "ばんせん", Romaji: "bansen", Category: CategoryNoun, Short: "track"},
	"ホーム": {Reading: "ほーむ", Romaji: "hoomu", Category: CategoryNoun, Short: "platform"},
	"改札":  {Reading: "かいさつ", Romaji: "kaisatsu", Category: CategoryNoun, Short: "gate"},

	// formation and cars
	"両編成":   {Reading: "りょうへんせい", Romaji: "ryou-hensei", Category: CategoryNoun, Short: "cars"},
	"号車":    {Reading: "ごうしゃ", Romaji: "gousha", Category: CategoryNoun, Short: "car"},
	"自由席":   {Reading: "じゆうせき", Romaji: "jiyuuseki", Category: CategoryNoun, Short: "nonreserved"},
	"指定席":   {Reading: "していせき", Romaji: "shiteiseki", Category: CategoryNoun, Short: "reserved"},
	"グリーン車": {Reading: "ぐりーんしゃ", Romaji: "guriin-sha", Category: CategoryNoun, Short: "green"},

	// numerals
	"一": {Reading: "いち", Romaji: "ichi", Category: CategoryNumeral, Short: "1"},
	"二": {Reading: "に", Romaji: "ni", Category: CategoryNumeral, Short: "2"},
	"三": {Reading: "さん", Romaji: "san", Category: CategoryNumeral, Short: "3"},
	"四": {Reading: "よん", Romaji: "yon", Category: CategoryNumeral, Short: "4"},
	"五": {Reading: "ご", Romaji: "go", Category: CategoryNumeral, Short: "5"},
	"六": {Reading: "ろく", Romaji: "roku", Category: CategoryNumeral, Short: "6"},
	"七": {Reading: "なな", Romaji: "nana", Category: CategoryNumeral, Short: "7"},
	"八": {Reading: "はち", Romaji: "hachi", Category: CategoryNumeral, Short: "8"},
	"九": {Reading: "きゅう", Romaji: "kyuu", Category: CategoryNumeral, Short: "9"},
	"十": {Reading: "じゅう", Romaji: "juu", Category: CategoryNumeral, Short: "10"},

	// particles and endings
	"は":     {Reading: "は", Romaji: "wa", Category: CategoryParticle, Short: "wa"},
	"が":     {Reading: "が", Romaji: "ga", Category: CategoryParticle, Short: "ga"},
	"を":     {Reading: "を", Romaji: "wo", Category: CategoryParticle, Short: "wo"},
	"に":     {Reading: "に", Romaji: "ni", Category: CategoryParticle, Short: "ni"},
	"で":     {Reading: "で", Romaji: "de", Category: CategoryParticle, Short: "de"},
	"と":     {Reading: "と", Romaji: "to", Category: CategoryParticle, Short: "to"},
	"の":     {Reading: "の", Romaji: "no", Category: CategoryParticle, Short: "no"},
	"へ":     {Reading: "へ", Romaji: "e", Category: CategoryParticle, Short: "e"},
	"から":    {Reading: "から", Romaji: "kara", Category: CategoryParticle, Short: "from"},
	"まで":    {Reading: "まで", Romaji: "made", Category: CategoryParticle, Short: "to"},
	"です":    {Reading: "です", Romaji: "desu", Category: CategoryInflectionalEnding},
	"ます":    {Reading: "ます", Romaji: "masu", Category: CategoryInflectionalEnding},
	"まいります": {Reading: "まいります", Romaji: "mairimasu", Category: CategoryVerb, Short: "go"},
	"います":   {Reading: "います", Romaji: "imasu", Category: CategoryVerb, Short: "be"},
	"します":   {Reading: "します", Romaji: "shimasu", Category: CategoryVerb, Short: "do"},
}

// railwayTerms takes precedence over the part-of-speech classification of
// the statistical analyzer.
var railwayTerms = map[string]Entry{
	"名古屋": {Romaji: "nagoya", Category: CategoryPlaceName, Short: "nagoya"},
	"大阪":  {Romaji: "osaka", Category: CategoryPlaceName, Short: "osaka"},
	"東京":  {Romaji: "tokyo", Category: CategoryPlaceName, Short: "tokyo"},
	"京都":  {Romaji: "kyoto", Category: CategoryPlaceName, Short: "kyoto"},
	"横浜":  {Romaji: "yokohama", Category: CategoryPlaceName, Short: "yokohama"},
	"新大阪": {Romaji: "shin-osaka", Category: CategoryPlaceName, Short: "shinosaka"},
	"品川":  {Romaji: "shinagawa", Category: CategoryPlaceName, Short: "shinagawa"},
	"博多":  {Romaji: "hakata", Category: CategoryPlaceName, Short: "hakata"},

	"特急":   {Romaji: "tokkyuu", Category: CategoryTrainType, Short: "ltdexp"},
	"急行":   {Romaji: "kyuukou", Category: CategoryTrainType, Short: "exp"},
	"快速":   {Romaji: "kaisoku", Category: CategoryTrainType, Short: "rapid"},
	"準急":   {Romaji: "junkyuu", Category: CategoryTrainType, Short: "semiexp"},
	"普通":   {Romaji: "futsuu", Category: CategoryTrainType, Short: "local"},
	"各駅停車": {Romaji: "kakueki-teisha", Category: CategoryTrainType, Short: "local"},

	"まもなく": {Romaji: "mamonaku", Category: CategoryAdverb, Short: "soon"},
	"次の":   {Romaji: "tsugi-no", Category: CategoryAdnominal, Short: "next"},
	"最終":   {Romaji: "saishuu", Category: CategoryNoun, Short: "last"},
	"始発":   {Romaji: "shihatsu", Category: CategoryNoun, Short: "first"},

	"上り":  {Romaji: "nobori", Category: CategoryNoun, Short: "up"},
	"下り":  {Romaji: "kudari", Category: CategoryNoun, Short: "down"},
	"行き":  {Romaji: "iki", Category: CategorySuffix, Short: "bound"},
	"方面":  {Romaji: "houmen", Category: CategoryNoun, Short: "direction"},
	"のりば": {Romaji: "noriba", Category: CategoryNoun, Short: "platform"},
	"ホーム": {Romaji: "hoomu", Category: CategoryNoun, Short: "platform"},
}

// BuiltinEntries returns a copy of the built-in vocabulary.
func BuiltinEntries() map[string]Entry {
	out := make(map[string]Entry, len(builtinVocabulary))
	for surface, e := range builtinVocabulary {
		e.Surface = surface
		out[surface] = e
	}
	return out
}
