package catalog

// stopwords is the fixed set of common Spanish words excluded from the
// search index. Tokens of 2 characters or fewer are already dropped by
// the length filter, so entries that short appear here only for clarity
// when scanning the list.
var stopwords = map[string]struct{}{}

func init() {
	words := []string{
		"a", "acá", "ahí", "ajena", "ajenas", "ajeno", "ajenos", "al", "algo",
		"algún", "alguna", "algunas", "alguno", "algunos", "allá", "allí",
		"ambos", "ante", "antes", "aquel", "aquella", "aquellas", "aquello",
		"aquellos", "aquí", "arriba", "abajo", "así", "atrás", "aun", "aunque",
		"bajo", "bastante", "bien", "cada", "casi", "como", "cómo", "con",
		"conmigo", "conseguimos", "conseguir", "consigo", "consigue",
		"consiguen", "contigo", "contra", "cual", "cuál", "cuales", "cuáles",
		"cualquier", "cualquiera", "cualquieras", "cuan", "cuán", "cuando",
		"cuándo", "cuanta", "cuánta", "cuantas", "cuántas", "cuanto", "cuánto",
		"cuantos", "cuántos", "de", "dejar", "del", "demás", "demasiada",
		"demasiadas", "demasiado", "demasiados", "dentro", "desde", "donde",
		"dónde", "dos", "el", "él", "ella", "ellas", "ello", "ellos", "empleáis",
		"emplean", "emplear", "empleas", "empleo", "en", "encima", "entonces",
		"entre", "era", "eramos", "eran", "eras", "eres", "es", "esa", "esas",
		"ese", "eso", "esos", "esta", "está", "estaba", "estado", "estáis",
		"estamos", "están", "estar", "estas", "este", "esto", "estos", "estoy",
		"etc", "fin", "fue", "fueron", "fui", "fuimos", "gueno", "ha", "hace",
		"hacéis", "hacemos", "hacen", "hacer", "haces", "hacia", "hago", "han",
		"hasta", "hay", "incluso", "intenta", "intentáis", "intentamos",
		"intentan", "intentar", "intentas", "intento", "ir", "jamás", "junto",
		"juntos", "la", "largo", "las", "le", "les", "lo", "los", "luego",
		"más", "me", "menos", "mi", "mí", "mía", "mías", "mientras", "mío",
		"míos", "mis", "misma", "mismas", "mismo", "mismos", "modo", "mucha",
		"muchas", "muchísima", "muchísimas", "muchísimo", "muchísimos",
		"mucho", "muchos", "muy", "nada", "ni", "ninguna", "ningunas",
		"ninguno", "ningunos", "no", "nos", "nosotras", "nosotros", "nuestra",
		"nuestras", "nuestro", "nuestros", "nunca", "os", "otra", "otras",
		"otro", "otros", "para", "parecer", "pero", "poca", "pocas", "poco",
		"pocos", "podéis", "podemos", "poder", "podría", "podríais",
		"podríamos", "podrían", "podrías", "por", "porque", "primero",
		"puede", "pueden", "puedo", "pues", "que", "qué", "querer", "quien",
		"quién", "quienes", "quiénes", "quienesquiera", "quienquiera",
		"quizá", "quizás", "sabe", "sabéis", "sabemos", "saben", "saber",
		"sabes", "se", "según", "ser", "si", "sí", "siempre", "siendo", "sin",
		"sino", "so", "sobre", "sois", "solamente", "solo", "sólo", "somos",
		"soy", "sr", "sra", "sres", "sta", "su", "sus", "suya", "suyas",
		"suyo", "suyos", "tal", "tales", "también", "tampoco", "tan", "tanta",
		"tantas", "tanto", "tantos", "te", "tenéis", "tenemos", "tener",
		"tengo", "ti", "tiempo", "tiene", "tienen", "toda", "todas", "todo",
		"todos", "tomar", "trabaja", "trabajáis", "trabajamos", "trabajan",
		"trabajar", "trabajas", "trabajo", "tras", "tú", "tu", "tus", "tuya",
		"tuyas", "tuyo", "tuyos", "ultimo", "último", "un", "una", "unas",
		"uno", "unos", "usa", "usáis", "usamos", "usan", "usar", "usas",
		"uso", "usted", "ustedes", "va", "vais", "valor", "vamos", "van",
		"varias", "varios", "vaya", "verdad", "verdadera", "verdadero",
		"vosotras", "vosotros", "voy", "vuestra", "vuestras", "vuestro",
		"vuestros", "y", "ya", "yo",
	}
	for _, w := range words {
		stopwords[w] = struct{}{}
	}
}
