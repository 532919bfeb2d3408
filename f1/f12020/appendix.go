package f12020

// Driver identifies an AI driver from the game's appendix. Network human
// players carry DriverUnknown; the local player carries DriverMe.
type Driver uint8

const (
	DriverCarlosSainz Driver = iota
	DriverDaniilKvyat
	DriverDanielRicciardo
	DriverFernandoAlonso
	DriverFelipeMassa
	_
	DriverKimiRaikkonen
	DriverLewisHamilton
	_
	DriverMaxVerstappen
	DriverNicoHulkenburg
	DriverKevinMagnussen
	DriverRomainGrosjean
	DriverSebastianVettel
	DriverSergioPerez
	DriverValtteriBottas
	_
	DriverEstebanOcon
	_
	DriverLanceStroll
	DriverArronBarnes
	DriverMartinGiles
	DriverAlexMurray
	DriverLucasRoth
	DriverIgorCorreia
	DriverSophieLevasseur
	DriverJonasSchiffer
	DriverAlainForest
	DriverJayLetourneau
	DriverEstoSaari
	DriverYasarAtiyeh
	DriverCallistoCalabresi
	DriverNaotaIzumi
	DriverHowardClarke
	DriverWilheimKaufmann
	DriverMarieLaursen
	DriverFlavioNieves
	DriverPeterBelousov
	DriverKlimekMichalski
	DriverSantiagoMoreno
	DriverBenjaminCoppens
	DriverNoahVisser
	DriverGertWaldmuller
	DriverJulianQuesada
	DriverDanielJones
	DriverArtemMarkelov
	DriverTadasukeMakino
	DriverSeanGelael
	DriverNyckDeVries
	DriverJackAitken
	DriverGeorgeRussell
	DriverMaximilianGunther
	DriverNireiFukuzumi
	DriverLucaGhiotto
	DriverLandoNorris
	DriverSergioSetteCamara
	DriverLouisDeletraz
	DriverAntonioFuoco
	DriverCharlesLeclerc
	DriverPierreGasly
	_
	_
	DriverAlexanderAlbon
	DriverNicholasLatifi
	DriverDorianBoccolacci
	DriverNikoKari
	DriverRobertoMerhi
	DriverArjunMaini
	DriverAlessioLorandi
	DriverRubenMeijer
	DriverRashidNair
	DriverJackTremblay
	_
	_
	DriverAntonioGiovinazzi
	DriverRobertKubica
	_
	_
	DriverNobuharuMatsushita
	DriverNikitaMazepin
	DriverGuanyuZhou
	DriverMickSchumacher
	DriverCallumIlott
	DriverJuanManuelCorrea
	DriverJordanKing
	DriverMahaveerRaghunathan
	DriverTatianaCalderon
	DriverAnthoineHubert
	DriverGuilianoAlesi
	DriverRalphBoschung
)

const (
	DriverMe      Driver = 100
	DriverUnknown Driver = 255
)

// Team identifies a constructor or classic car from the game's appendix.
type Team uint8

const (
	TeamMercedes Team = iota
	TeamFerrari
	TeamRedBullRacing
	TeamWilliams
	TeamRacingPoint
	TeamRenault
	TeamAlphaTauri
	TeamHaas
	TeamMcLaren
	TeamAlfaRomeo
	TeamMcLaren1988
	TeamMcLaren1991
	TeamWilliams1992
	TeamFerrari1995
	TeamWilliams1996
	TeamMcLaren1998
	TeamFerrari2002
	TeamFerrari2004
	TeamRenault2006
	TeamFerrari2007
	TeamMcLaren2008
	TeamRedBull2010
	TeamFerrari1976
	TeamARTGrandPrix
	TeamCamposVexatecRacing
	TeamCarlin
	TeamCharouzRacingSystem
	TeamDAMS
	TeamRussianTime
	TeamMPMotorsport
	TeamPertamina
	TeamMcLaren1990
	TeamTrident
	TeamBWTArden
	TeamMcLaren1976
	TeamLotus1972
	TeamFerrari1979
	TeamMcLaren1982
	TeamWilliams2003
	TeamBrawn2009
	TeamLotus1978
	TeamF1GenericCar
	TeamArtGP19
	TeamCampos19
	TeamCarlin19
	TeamSauberJuniorCharouz19
	TeamDams19
	TeamUniVirtuosi19
	TeamMPMotorsport19
	TeamPrema19
	TeamTrident19
	TeamArden19
	TeamBenetton1994
	TeamBenetton1995
	TeamFerrari2000
	TeamJordan1991
)

const (
	TeamFerrari1990 Team = 63
	TeamMcLaren2010 Team = 64
	TeamFerrari2010 Team = 65
	TeamUnknown     Team = 254
	TeamMyTeam      Team = 255
)

// Nationality of a driver, from the game's appendix.
type Nationality uint8

const (
	NationalityUnknown Nationality = iota
	NationalityAmerican
	NationalityArgentinean
	NationalityAustralian
	NationalityAustrian
	NationalityAzerbaijani
	NationalityBahraini
	NationalityBelgian
	NationalityBolivian
	NationalityBrazilian
	NationalityBritish
	NationalityBulgarian
	NationalityCameroonian
	NationalityCanadian
	NationalityChilean
	NationalityChinese
	NationalityColombian
	NationalityCostaRican
	NationalityCroatian
	NationalityCypriot
	NationalityCzech
	NationalityDanish
	NationalityDutch
	NationalityEcuadorian
	NationalityEnglish
	NationalityEmirian
	NationalityEstonian
	NationalityFinnish
	NationalityFrench
	NationalityGerman
	NationalityGhanaian
	NationalityGreek
	NationalityGuatemalan
	NationalityHonduran
	NationalityHongKonger
	NationalityHungarian
	NationalityIcelander
	NationalityIndian
	NationalityIndonesian
	NationalityIrish
	NationalityIsraeli
	NationalityItalian
	NationalityJamaican
	NationalityJapanese
	NationalityJordanian
	NationalityKuwaiti
	NationalityLatvian
	NationalityLebanese
	NationalityLithuanian
	NationalityLuxembourger
	NationalityMalaysian
	NationalityMaltese
	NationalityMexican
	NationalityMonegasque
	NationalityNewZealander
	NationalityNicaraguan
	NationalityNorthKorean
	NationalityNorthernIrish
	NationalityNorwegian
	NationalityOmani
	NationalityPakistani
	NationalityPanamanian
	NationalityParaguayan
	NationalityPeruvian
	NationalityPolish
	NationalityPortuguese
	NationalityQatari
	NationalityRomanian
	NationalityRussian
	NationalitySalvadoran
	NationalitySaudi
	NationalityScottish
	NationalitySerbian
	NationalitySingaporean
	NationalitySlovakian
	NationalitySlovenian
	NationalitySouthKorean
	NationalitySouthAfrican
	NationalitySpanish
	NationalitySwedish
	NationalitySwiss
	NationalityThai
	NationalityTurkish
	NationalityUruguayan
	NationalityUkrainian
	NationalityVenezuelan
	NationalityWelsh
	NationalityBarbadian
	NationalityVietnamese
)
