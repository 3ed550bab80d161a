/*
Package seqs mirrors sliceutil's search helpers for Go 1.23+ iterators
(iter.Seq).

Only the forward-scan subset lives here. The last-match variants in
sliceutil are derived by reversal, which a stream cannot offer without
being collected first, so [LastBy] and [LastIdxBy] instead keep the
most recent hit during a single full pass. The two packages agree on
every result for the same finite input.

Sequences must be finite, or the consumer must stop the iteration
early; [AllIdxsBy] and [AllIdxsOf] are lazy and respect an early stop.
*/
package seqs
