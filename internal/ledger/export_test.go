package ledger

// ContractABI exposes the contract ABI to the external test package.
const ContractABI = contractABI
