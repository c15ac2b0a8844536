package token

const (
	Undetermined Token = iota

	Plus      // +
	Minus     // -
	Multiply  // *
	Exponent  // **
	Slash     // /
	Remainder // %

	And                // &
	Or                 // |
	ExclusiveOr        // ^
	ShiftLeft          // <<
	ShiftRight         // >>
	UnsignedShiftRight // >>>

	LogicalAnd // &&
	LogicalOr  // ||
	Coalesce   // ??
	Increment  // ++
	Decrement  // --

	Equal       // ==
	StrictEqual // ===
	Less        // <
	Greater     // >
	Assign      // =
	Not         // !

	BitwiseNot // ~

	NotEqual       // !=
	StrictNotEqual // !==
	LessOrEqual    // <=
	GreaterOrEqual // >=

	Keyword
	Boolean
	Null

	If
	In
	Of
	Do

	Var
	For
	New
	Try

	This
	Else
	Case
	Void
	With

	Const
	While
	Break
	Catch
	Throw
	Class
	Super

	Return
	Typeof
	Delete
	Switch

	Default
	Finally
	Extends

	Function
	Continue
	Debugger

	InstanceOf

	Let
	Static
	Async
	Await
	Yield
)

var token2string = [...]string{
	Keyword:            "Keyword",
	Boolean:            "Boolean",
	Null:               "Null",
	Plus:               "+",
	Minus:              "-",
	Exponent:           "**",
	Multiply:           "*",
	Slash:              "/",
	Remainder:          "%",
	And:                "&",
	Or:                 "|",
	ExclusiveOr:        "^",
	ShiftLeft:          "<<",
	ShiftRight:         ">>",
	UnsignedShiftRight: ">>>",
	LogicalAnd:         "&&",
	LogicalOr:          "||",
	Coalesce:           "??",
	Increment:          "++",
	Decrement:          "--",
	Equal:              "==",
	StrictEqual:        "===",
	Less:               "<",
	Greater:            ">",
	Assign:             "=",
	Not:                "!",
	BitwiseNot:         "~",
	NotEqual:           "!=",
	StrictNotEqual:     "!==",
	LessOrEqual:        "<=",
	GreaterOrEqual:     ">=",
	If:                 "if",
	In:                 "in",
	Of:                 "of",
	Do:                 "do",
	Var:                "var",
	Let:                "let",
	For:                "for",
	New:                "new",
	Try:                "try",
	This:               "this",
	Else:               "else",
	Case:               "case",
	Void:               "void",
	With:               "with",
	Async:              "async",
	Await:              "await",
	Yield:              "yield",
	Const:              "const",
	While:              "while",
	Break:              "break",
	Catch:              "catch",
	Throw:              "throw",
	Class:              "class",
	Super:              "super",
	Return:             "return",
	Typeof:             "typeof",
	Delete:             "delete",
	Switch:             "switch",
	Static:             "static",
	Default:            "default",
	Finally:            "finally",
	Extends:            "extends",
	Function:           "function",
	Continue:           "continue",
	Debugger:           "debugger",
	InstanceOf:         "instanceof",
}

var keywordTable = map[string]keyword{
	"if": {
		token: If,
	},
	"in": {
		token: In,
	},
	"do": {
		token: Do,
	},
	"var": {
		token: Var,
	},
	"for": {
		token: For,
	},
	"new": {
		token: New,
	},
	"try": {
		token: Try,
	},
	"this": {
		token: This,
	},
	"else": {
		token: Else,
	},
	"case": {
		token: Case,
	},
	"void": {
		token: Void,
	},
	"with": {
		token: With,
	},
	"async": {
		token: Async,
	},
	"while": {
		token: While,
	},
	"break": {
		token: Break,
	},
	"catch": {
		token: Catch,
	},
	"throw": {
		token: Throw,
	},
	"return": {
		token: Return,
	},
	"typeof": {
		token: Typeof,
	},
	"delete": {
		token: Delete,
	},
	"switch": {
		token: Switch,
	},
	"default": {
		token: Default,
	},
	"finally": {
		token: Finally,
	},
	"function": {
		token: Function,
	},
	"continue": {
		token: Continue,
	},
	"debugger": {
		token: Debugger,
	},
	"instanceof": {
		token: InstanceOf,
	},
	"const": {
		token: Const,
	},
	"class": {
		token: Class,
	},
	"enum": {
		token:         Keyword,
		futureKeyword: true,
	},
	"export": {
		token:         Keyword,
		futureKeyword: true,
	},
	"extends": {
		token: Extends,
	},
	"import": {
		token:         Keyword,
		futureKeyword: true,
	},
	"super": {
		token: Super,
	},
	"implements": {
		token:         Keyword,
		futureKeyword: true,
		strict:        true,
	},
	"interface": {
		token:         Keyword,
		futureKeyword: true,
		strict:        true,
	},
	"package": {
		token:         Keyword,
		futureKeyword: true,
		strict:        true,
	},
	"private": {
		token:         Keyword,
		futureKeyword: true,
		strict:        true,
	},
	"protected": {
		token:         Keyword,
		futureKeyword: true,
		strict:        true,
	},
	"public": {
		token:         Keyword,
		futureKeyword: true,
		strict:        true,
	},
	"let": {
		token:  Let,
		strict: true,
	},
	"static": {
		token:  Static,
		strict: true,
	},
	"await": {
		token: Await,
	},
	"yield": {
		token: Yield,
	},
	"false": {
		token: Boolean,
	},
	"true": {
		token: Boolean,
	},
	"null": {
		token: Null,
	},
}
