package fakeapi

// nationality holds the locale data used when generating a user.
type nationality struct {
	Country   string
	States    []string
	Cities    []string
	Streets   []string
	Phone     string // fmt layout taking three ints
	Postcode  string // fmt layout taking one int
	IDName    string // empty when the locale has no national id
	Timezones []timezone
}

type timezone struct {
	Offset      string
	Description string
}

var (
	tzEurope  = []timezone{{"+1:00", "Brussels, Copenhagen, Madrid, Paris"}, {"+2:00", "Kaliningrad, South Africa"}}
	tzUK      = []timezone{{"0:00", "Western Europe Time, London, Lisbon, Casablanca"}}
	tzAmerica = []timezone{{"-5:00", "Eastern Time (US & Canada), Bogota, Lima"}, {"-6:00", "Central Time (US & Canada), Mexico City"}, {"-8:00", "Pacific Time (US & Canada)"}}
	tzPacific = []timezone{{"+10:00", "Eastern Australia, Guam, Vladivostok"}, {"+12:00", "Auckland, Wellington, Fiji, Kamchatka"}}
	tzAsia    = []timezone{{"+3:30", "Tehran"}, {"+5:30", "Bombay, Calcutta, Madras, New Delhi"}, {"+3:00", "Baghdad, Riyadh, Moscow, St. Petersburg"}}
	tzBrazil  = []timezone{{"-3:00", "Brazil, Buenos Aires, Georgetown"}}
)

// nationalities lists every code the API accepts for the nat filter.
var nationalities = map[string]nationality{
	"AU": {"Australia", []string{"New South Wales", "Victoria", "Queensland"}, []string{"Sydney", "Melbourne", "Brisbane"}, []string{"George St", "Pitt St", "Collins St"}, "%02d-%04d-%04d", "%04d", "TFN", tzPacific},
	"BR": {"Brazil", []string{"São Paulo", "Bahia", "Paraná"}, []string{"Campinas", "Salvador", "Curitiba"}, []string{"Rua Um", "Rua Dois", "Avenida Brasil"}, "(%02d) %04d-%04d", "%05d", "CPF", tzBrazil},
	"CA": {"Canada", []string{"Ontario", "Québec", "Alberta"}, []string{"Toronto", "Montréal", "Calgary"}, []string{"Dufferin St", "King St", "Parliament St"}, "%03d-%03d-%04d", "K%dA 1B2", "SIN", tzAmerica},
	"CH": {"Switzerland", []string{"Zürich", "Bern", "Genève"}, []string{"Winterthur", "Thun", "Carouge"}, []string{"Rue de la Gare", "Bahnhofstrasse", "Place du Marché"}, "0%02d %03d %02d", "%04d", "AVS", tzEurope},
	"DE": {"Germany", []string{"Bayern", "Hessen", "Sachsen"}, []string{"München", "Frankfurt", "Dresden"}, []string{"Lindenstraße", "Bahnhofstraße", "Gartenstraße"}, "0%03d-%07d%d", "%05d", "SVNR", tzEurope},
	"DK": {"Denmark", []string{"Hovedstaden", "Midtjylland", "Syddanmark"}, []string{"København", "Aarhus", "Odense"}, []string{"Nørregade", "Vestergade", "Østergade"}, "%02d%02d%04d", "%04d", "CPR", tzEurope},
	"ES": {"Spain", []string{"Madrid", "Cataluña", "Andalucía"}, []string{"Madrid", "Barcelona", "Sevilla"}, []string{"Calle Mayor", "Avenida del Puerto", "Calle de Alcalá"}, "9%02d-%03d-%03d", "%05d", "DNI", tzEurope},
	"FI": {"Finland", []string{"Uusimaa", "Pirkanmaa", "Lappi"}, []string{"Helsinki", "Tampere", "Rovaniemi"}, []string{"Hämeenkatu", "Mannerheimintie", "Aleksanterinkatu"}, "0%d-%03d-%03d", "%05d", "HETU", tzEurope},
	"FR": {"France", []string{"Île-de-France", "Gironde", "Rhône"}, []string{"Paris", "Bordeaux", "Lyon"}, []string{"Rue de la République", "Rue Victor-Hugo", "Place de la Mairie"}, "0%d-%02d-%06d", "%05d", "INSEE", tzEurope},
	"GB": {"United Kingdom", []string{"Greater London", "Merseyside", "Lothian"}, []string{"London", "Liverpool", "Edinburgh"}, []string{"High Street", "Church Road", "Station Road"}, "0%03d %03d %04d", "SW%d 1AA", "NINO", tzUK},
	"IE": {"Ireland", []string{"Dublin", "Cork", "Galway"}, []string{"Dublin", "Cork", "Galway"}, []string{"Main Street", "Grafton Street", "Patrick Street"}, "0%02d-%03d-%04d", "D%02d", "PPS", tzUK},
	"IN": {"India", []string{"Maharashtra", "Karnataka", "Kerala"}, []string{"Mumbai", "Bengaluru", "Kochi"}, []string{"MG Road", "Station Road", "Park Street"}, "%04d%03d%03d", "%06d", "UIDAI", tzAsia},
	"IR": {"Iran", []string{"Tehran", "Isfahan", "Fars"}, []string{"Tehran", "Isfahan", "Shiraz"}, []string{"Azadi", "Enghelab", "Valiasr"}, "0%03d-%03d-%04d", "%05d", "", tzAsia},
	"MX": {"Mexico", []string{"Jalisco", "Nuevo León", "Puebla"}, []string{"Guadalajara", "Monterrey", "Puebla"}, []string{"Calle Hidalgo", "Avenida Juárez", "Calle Morelos"}, "(%03d) %03d %04d", "%05d", "NSS", tzAmerica},
	"NL": {"Netherlands", []string{"Noord-Holland", "Utrecht", "Zuid-Holland"}, []string{"Amsterdam", "Utrecht", "Rotterdam"}, []string{"Kerkstraat", "Dorpsstraat", "Molenweg"}, "(0%03d) %03d%03d", "%04d AB", "BSN", tzEurope},
	"NO": {"Norway", []string{"Oslo", "Vestland", "Trøndelag"}, []string{"Oslo", "Bergen", "Trondheim"}, []string{"Storgata", "Kirkeveien", "Skolegata"}, "%02d%02d%04d", "%04d", "FN", tzEurope},
	"NZ": {"New Zealand", []string{"Auckland", "Wellington", "Canterbury"}, []string{"Auckland", "Wellington", "Christchurch"}, []string{"Queen Street", "Cuba Street", "Colombo Street"}, "(%03d)-%03d-%04d", "%04d", "", tzPacific},
	"RS": {"Serbia", []string{"Vojvodina", "Šumadija", "Nišava"}, []string{"Novi Sad", "Kragujevac", "Niš"}, []string{"Kneza Miloša", "Karađorđeva", "Nemanjina"}, "0%02d-%03d-%04d", "%05d", "SID", tzEurope},
	"TR": {"Turkey", []string{"İstanbul", "Ankara", "İzmir"}, []string{"İstanbul", "Ankara", "İzmir"}, []string{"Atatürk Sk", "Cumhuriyet Cd", "İstiklal Cd"}, "(%03d)-%03d-%04d", "%05d", "", tzAsia},
	"UA": {"Ukraine", []string{"Kyivska", "Lvivska", "Odeska"}, []string{"Kyiv", "Lviv", "Odesa"}, []string{"Khreshchatyk", "Shevchenka", "Franka"}, "(0%02d) %03d-%04d", "%05d", "", tzEurope},
	"US": {"United States", []string{"California", "Texas", "New York"}, []string{"Los Angeles", "Houston", "Buffalo"}, []string{"Valwood Pkwy", "Main St", "Oak Lawn Ave"}, "(%03d) %03d-%04d", "%05d", "SSN", tzAmerica},
}

// nationalityCodes is the sorted list of supported codes; generation picks
// from it by index so ordering must be stable.
var nationalityCodes = []string{
	"AU", "BR", "CA", "CH", "DE", "DK", "ES", "FI", "FR", "GB", "IE",
	"IN", "IR", "MX", "NL", "NO", "NZ", "RS", "TR", "UA", "US",
}

var maleFirstNames = []string{
	"Liam", "Noah", "Oliver", "Elias", "Mateo", "Lucas", "Hugo", "Arjun",
	"Jonas", "Emil", "Theo", "Felix", "Leon", "Oscar", "Ravi", "Diego",
	"Milan", "Aksel", "Yusuf", "Taras", "Owen", "Finn", "Luca", "Nikola",
}

var femaleFirstNames = []string{
	"Emma", "Olivia", "Sofia", "Mia", "Ava", "Ella", "Nora", "Aisha",
	"Freja", "Ingrid", "Chloé", "Lea", "Clara", "Maya", "Priya", "Lucia",
	"Ana", "Sara", "Zeynep", "Oksana", "Jennie", "Aoife", "Ruby", "Milica",
}

var lastNames = []string{
	"Nichols", "Garcia", "Müller", "Dubois", "Jensen", "Korhonen", "Smith",
	"Murphy", "Patel", "Rossi", "de Vries", "Hansen", "Wilson", "Jovanović",
	"Yılmaz", "Shevchenko", "Martin", "Silva", "Hernández", "Tremblay",
	"Fischer", "Moreau", "Kaya", "Novak",
}

var usernameAdjectives = []string{
	"yellow", "silver", "brown", "happy", "lazy", "heavy", "tiny", "crazy",
	"angry", "sad", "purple", "white", "black", "red", "blue", "green",
}

var usernameNouns = []string{
	"peacock", "tiger", "rabbit", "koala", "swan", "bird", "elephant", "fish",
	"lion", "leopard", "dog", "cat", "frog", "goose", "butterfly", "ladybug",
}

var passwords = []string{
	"addison", "sunshine", "dragon", "qwerty", "monkey", "letmein", "shadow",
	"master", "freedom", "whatever", "trustno1", "starwars", "hunter", "ranger",
}

var titles = map[string][]string{
	"male":   {"Mr", "Monsieur"},
	"female": {"Ms", "Mrs", "Miss", "Madame"},
}
