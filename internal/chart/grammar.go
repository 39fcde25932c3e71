package chart

// Grammar returns the Lark grammar for chord charts.
// A chart is a sequence of chord() and rest() calls laid out back to back:
//
//	chord(symbol="Dm7", beats=4); chord(symbol="G7", beats=2, rhythm="charleston"); rest(beats=2)
func Grammar() string {
	return `
// Chord chart grammar
// SYNTAX:
//   chord(symbol="Cmaj7")                       - four beats of Cmaj7
//   chord(symbol="F#m7b5", beats=2)             - explicit length in beats
//   chord(symbol="G7(b9)", rhythm="bossa")      - played on a rhythm template
//   chord(symbol="Am/G", direction="updown")    - arpeggiated in 16th notes
//   chord(symbol="C", beats=4, repeat=2)        - repeated back to back
//   rest(beats=2)                               - silence
//
// Calls are separated by ";" and each starts where the previous one ended.

// ---------- Start rule ----------
start: chart_call (";" chart_call)*

chart_call: chord_call
          | rest_call

// ---------- Chord ----------
chord_call: "chord" "(" chord_named_params ")"

chord_named_params: chord_named_param ("," SP chord_named_param)*
chord_named_param: "symbol" "=" STRING
                 | "beats" "=" NUMBER
                 | "rhythm" "=" STRING
                 | "direction" "=" DIRECTION
                 | "repeat" "=" NUMBER

DIRECTION: "\"up\"" | "\"down\"" | "\"updown\""

// ---------- Rest ----------
rest_call: "rest" "(" rest_params? ")"
rest_params: "beats" "=" NUMBER

// ---------- Terminals ----------
SP: " "+
STRING: /"[^"]*"/
NUMBER: /\d+(\.\d+)?/
`
}
