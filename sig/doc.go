// Package sig derives and parses JVM type signatures.
//
// A signature is the runtime's canonical string encoding of a type:
//
//	boolean Z    byte B    char C    short S
//	int     I    long J    float F   double D
//	void    V    object L<name>;     array [<elem>
//
// Method signatures concatenate parameter signatures in parentheses followed by
// the return signature, e.g. "(Ljava/lang/String;)Z". Member lookup in the
// runtime requires these strings byte for byte; a mismatch makes resolution fail.
//
//	t := sig.Object("java/lang/String")
//	t.Signature()                       // "Ljava/lang/String;"
//	sig.Method(sig.Boolean, t)          // "(Ljava/lang/String;)Z"
//
// Parse and ParseMethod are the inverse operations.
package sig
