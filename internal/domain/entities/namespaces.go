package entities

// Namespace IRI prefixes used when minting and reading URIs.
const (
	// BaseNamespace is the base vocabulary namespace of the knowledge graph.
	BaseNamespace = "http://tolkiengateway.semanticweb.org/"

	// ResourceNamespace is the namespace under which graph entities live.
	ResourceNamespace = BaseNamespace + "resource/"

	// SchemaNamespace is the schema.org vocabulary for common predicates.
	SchemaNamespace = "http://schema.org/"

	// CardNamespace is the namespace under which card nodes are minted.
	CardNamespace = "http://metw.org/card/"
)

// Well-known class and predicate IRIs.
const (
	RDFType   IRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	RDFSLabel IRI = "http://www.w3.org/2000/01/rdf-schema#label"

	SchemaThing              IRI = SchemaNamespace + "Thing"
	SchemaName               IRI = SchemaNamespace + "name"
	SchemaSubjectOf          IRI = SchemaNamespace + "subjectOf"
	SchemaAdditionalType     IRI = SchemaNamespace + "additionalType"
	SchemaAdditionalProperty IRI = SchemaNamespace + "additionalProperty"
	SchemaIsPartOf           IRI = SchemaNamespace + "isPartOf"
)
