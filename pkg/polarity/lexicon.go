package polarity

// valenceLexicon is a compact valence table in the style of the VADER
// lexicon: mean human ratings in [-4, 4], scaled here to roughly [-3.5, 3.5].
var valenceLexicon = map[string]float64{
	"abandon":     -1.9,
	"abuse":       -3.2,
	"accomplish":  1.9,
	"achieve":     1.8,
	"admire":      2.1,
	"adore":       2.9,
	"afraid":      -2.0,
	"aggressive":  -1.4,
	"amazing":     2.8,
	"angry":       -2.3,
	"annoy":       -1.7,
	"anxious":     -1.9,
	"appreciate":  1.9,
	"awful":       -2.9,
	"bad":         -2.5,
	"beautiful":   2.7,
	"benefit":     1.7,
	"best":        3.2,
	"better":      1.9,
	"bless":       2.2,
	"bold":        1.2,
	"boring":      -1.3,
	"brave":       2.2,
	"brilliant":   2.8,
	"broken":      -1.8,
	"calm":        1.3,
	"celebrate":   2.4,
	"cheerful":    2.4,
	"comfort":     1.6,
	"confident":   2.0,
	"crash":       -1.9,
	"crisis":      -2.3,
	"cruel":       -2.8,
	"damage":      -2.0,
	"danger":      -2.4,
	"dead":        -3.3,
	"defeat":      -1.9,
	"delight":     2.6,
	"despair":     -2.8,
	"destroy":     -2.6,
	"die":         -2.9,
	"difficult":   -1.3,
	"disaster":    -3.1,
	"dread":       -2.3,
	"eager":       1.6,
	"easy":        1.4,
	"effective":   1.8,
	"elegant":     1.9,
	"encourage":   1.9,
	"enjoy":       2.2,
	"error":       -1.6,
	"evil":        -3.4,
	"excellent":   2.7,
	"excited":     2.1,
	"fail":        -2.2,
	"failure":     -2.5,
	"fantastic":   2.6,
	"fear":        -2.2,
	"fine":        0.8,
	"fraud":       -2.8,
	"free":        1.6,
	"friendly":    2.2,
	"fun":         2.3,
	"genius":      2.6,
	"gentle":      1.6,
	"glad":        2.0,
	"good":        1.9,
	"great":       3.1,
	"grief":       -2.7,
	"happy":       2.7,
	"harm":        -2.3,
	"hate":        -2.7,
	"healthy":     1.8,
	"help":        1.7,
	"hero":        2.6,
	"honest":      2.3,
	"hope":        1.9,
	"horrible":    -2.5,
	"hurt":        -2.4,
	"ignore":      -1.5,
	"improve":     1.9,
	"inspire":     2.4,
	"intelligent": 2.1,
	"joy":         2.8,
	"kill":        -3.4,
	"kind":        2.4,
	"laugh":       2.5,
	"lose":        -1.7,
	"loss":        -2.1,
	"love":        3.2,
	"lucky":       1.8,
	"mistake":     -1.6,
	"misery":      -2.7,
	"murder":      -3.4,
	"nice":        1.8,
	"optimistic":  1.6,
	"outstanding": 2.8,
	"pain":        -2.5,
	"peace":       2.5,
	"perfect":     2.7,
	"pleasant":    2.3,
	"pleasure":    2.6,
	"poor":        -2.1,
	"popular":     1.9,
	"powerful":    1.6,
	"problem":     -1.7,
	"progress":    1.8,
	"prosper":     2.2,
	"proud":       2.1,
	"reject":      -1.7,
	"relief":      1.9,
	"rich":        2.0,
	"ruin":        -2.5,
	"sad":         -2.1,
	"safe":        1.8,
	"scared":      -2.2,
	"sick":        -2.2,
	"smart":       1.7,
	"smile":       2.0,
	"strong":      2.3,
	"succeed":     2.4,
	"success":     2.7,
	"successful":  2.5,
	"suffer":      -2.5,
	"support":     1.7,
	"terrible":    -2.7,
	"terrific":    2.6,
	"threat":      -2.3,
	"tragedy":     -3.0,
	"triumph":     2.5,
	"trust":       2.3,
	"ugly":        -2.3,
	"useful":      1.8,
	"victory":     2.6,
	"violent":     -2.9,
	"war":         -2.9,
	"warm":        1.6,
	"weak":        -1.8,
	"wealth":      2.2,
	"win":         2.8,
	"wonderful":   2.7,
	"worry":       -1.9,
	"worst":       -3.1,
	"wrong":       -2.1,
}

// boosterLexicon shifts the valence of the next lexicon hit.
var boosterLexicon = map[string]float64{
	"absolutely": boostIncrement,
	"completely": boostIncrement,
	"extremely":  boostIncrement,
	"highly":     boostIncrement,
	"incredibly": boostIncrement,
	"really":     boostIncrement,
	"remarkably": boostIncrement,
	"so":         boostIncrement,
	"totally":    boostIncrement,
	"truly":      boostIncrement,
	"utterly":    boostIncrement,
	"very":       boostIncrement,
}

// negationWords flip the valence of a following lexicon hit.
var negationWords = map[string]bool{
	"ain't":   true,
	"aren't":  true,
	"can't":   true,
	"didn't":  true,
	"doesn't": true,
	"don't":   true,
	"hardly":  true,
	"isn't":   true,
	"never":   true,
	"no":      true,
	"nobody":  true,
	"none":    true,
	"not":     true,
	"nothing": true,
	"rarely":  true,
	"wasn't":  true,
	"without": true,
	"won't":   true,
}
