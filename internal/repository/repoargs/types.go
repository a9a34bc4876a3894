package repoargs

type RepositoryName string

const (
	CustomerRepoName RepositoryName = "customer"
	CardRepoName     RepositoryName = "credit_card"
	CatalogRepoName  RepositoryName = "catalog"
	LedgerRepoName   RepositoryName = "ledger"
)
