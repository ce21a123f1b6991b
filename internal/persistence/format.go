// Package persistence implements a deterministic tagged-text model
// format: a plain-ASCII, line-oriented framing where every component
// writes its tag, its fields, then the same tag again to close it.
package persistence

// Literal frame tags, written and checked verbatim on their own lines.
const (
	tagDoc2Vec        = "TDoc2Vec"
	tagDoc2VecClose   = "/TDoc2Vec"
	tagTrainSpec      = "TTrainSpec"
	tagTrainSpecClose = "/TTrainSpec"
	tagNeuralNet      = "TNeuralNetwork"
	tagNeuralNetClose = "/TNeuralNetwork"
	tagLayer          = "TLayer"
	tagLayerClose     = "/TLayer"
	tagLayerVector    = "TLayerVector"
	tagLayerVecClose  = "/TLayerVector"
	tagDocsHolder     = "TDocumentsHolder"
	tagDocsHolderClos = "/TDocumentsHolder"
	tagDocument       = "TDocument"
	tagDocumentClose  = "/TDocument"
	tagVocabulary     = "TVocabulary"
	tagVocabularyClos = "/TVocabulary"
	tagWord           = "TWord"
	tagWordClose      = "/TWord"
)

// layerOrder is the fixed order the six neural-model layers are written
// and read in.
var layerOrder = []string{"W_in", "D_in", "W_norm", "D_norm", "W_hs", "W_ng"}
