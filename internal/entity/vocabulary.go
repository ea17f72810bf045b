package entity

// DefaultVocabulary is used when a game is created without a vocabulary: football players, clubs,
// competitions, stadiums and jargon.
var DefaultVocabulary = []string{
	"MESSI", "RONALDO", "NEYMAR", "MBAPPE",
	"MARADONA", "PELE", "ZIDANE", "BECKHAM",
	"RONALDINHO", "LEWANDOWSKI", "SALAH", "HAZARD",
	"INIESTA", "XAVI", "BUFFON", "MODRIC",
	"KANE", "HAALAND", "ROONEY", "HENRY",
	"RIVALDO", "TOTTI", "PIRLO", "DROGBA",
	"SUAREZ", "VANPERSIE", "ROBBEN", "SCHWEINSTEIGER",
	"GERRARD", "LAMPARD", "VIDIC", "PUYOL",
	"SERGIORAMOS", "CASILLAS", "COURTOIS", "DEBRUYNE",
	"GRIEZMANN", "POGBA", "DYBALA",

	"BARCELONA", "REALMADRID", "MANCHESTERUNITED", "LIVERPOOL",
	"BAYERNMUNICH", "JUVENTUS", "PSG", "ACMILAN",
	"INTERMILAN", "CHELSEA", "ARSENAL", "ATLETICOMADRID",
	"SEVILLA", "AJAX", "BENFICA", "PORTO",
	"GALATASARAY", "FENERBAHCE", "BESIKTAS",

	"WORLDCUP", "CHAMPIONSLEAGUE", "BALLONDOR", "GOLDENBOOT",
	"FIFA", "UEFA", "COPAAMERICA", "EUROCUP",
	"LALIGA", "PREMIERLEAGUE", "SERIEA", "BUNDESLIGA",
	"ELCLASICO", "SUPERCUP", "CLUBWORLDCUP", "NATIONSLEAGUE",
	"AFRICANCUP",

	"WEMBLEY", "CAMPNOU", "SANTIAGOBERNABEU", "OLDTRAFFORD",
	"ANFIELD", "MARACANA", "ALLIANZARENA", "SIGNALIDUNAPARK",
	"ETIHADSTADIUM", "EMIRATESSTADIUM",

	"PUSKASAWARD", "BESTFIFA", "TEAMOFYEAR", "TRANSFERMARKET",
	"DEADLINEDAY", "HATTRICK", "FREEKICK", "PENALTYSHOOTOUT",
	"VAR", "OFFSIDE", "TIKIATAKA",
}
